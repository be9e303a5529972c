package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/retain/pkg/commands/options"
	"tableflip.dev/retain/pkg/runner/key"
	"tableflip.dev/retain/pkg/runner/tree"
	"tableflip.dev/retain/pkg/store"
)

func addTree(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "render the settings screen without a terminal and print its widgets",
		Example: `
retain tree
retain tree --hints --calls
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := tree.Tree{
				ShowHints:   do.ShowHints,
				ShowCalls:   do.ShowCalls,
				Persistence: p,
			}
			return t.Do(context.Background())
		},
	}

	options.AddHintArgs(cmd, do)
	options.AddCallArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "print the legend of the symbols used by tree",
		Example: `
retain key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
