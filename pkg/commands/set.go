package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/retain/pkg/commands/options"
	"tableflip.dev/retain/pkg/runner/set"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "store one setting",
		Example: `
retain set difficulty Hard
retain set quality -i
retain set -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return errors.New("too many arguments, want a setting and a value")
			}
			if i.Interactive {
				return nil
			}
			if len(args) < 2 {
				return errors.New("want a setting and a value, or --interactive")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return settingCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return choiceCompletions(args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := set.Set{
				Interactive: i.Interactive,
				Persistence: p,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				s.Name = args[0]
			}
			if len(args) > 1 {
				s.Value = args[1]
			}
			return s.Do(context.Background())
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func choiceCompletions(name string) []string {
	f, ok := screen.Bind(store.NewMemory()).Lookup(name)
	if !ok {
		return nil
	}
	return f.Choices()
}
