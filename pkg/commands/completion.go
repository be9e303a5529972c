package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(retain completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(retain completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// settingCompletions lists setting names. Names are static, so no store is
// opened.
func settingCompletions(toComplete string) []string {
	var out []string
	for _, f := range screen.Bind(store.NewMemory()).Fields() {
		if strings.HasPrefix(f.GetName(), toComplete) {
			out = append(out, f.GetName())
		}
	}
	return out
}
