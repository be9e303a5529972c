package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/retain/pkg/commands/options"
	"tableflip.dev/retain/pkg/runner/get"
	"tableflip.dev/retain/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "get [setting...]",
		Short: "print stored settings",
		Example: `
retain get
retain get difficulty vsync --json
retain get --hints
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return settingCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Names:       args,
				JSON:        oo.JSON,
				ShowHints:   do.ShowHints,
				Persistence: p,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddHintArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
