package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	teaui "tableflip.dev/retain/pkg/runner/tea"
	"tableflip.dev/retain/pkg/runner/ui"
	"tableflip.dev/retain/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the settings screen",
		Long:  base.Wrap80("Open the settings screen. Changes are stored as soon as they are made and changes made by other processes show up live."),
		Example: `
retain ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := teaui.Tea{Persistence: p}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addClassic(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "classic",
		Short: "open the settings screen with the tui-go backend",
		Example: `
retain classic
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
