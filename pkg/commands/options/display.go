package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions
type DisplayOptions struct {
	ShowHints bool
	ShowCalls bool
}

func AddHintArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVar(&o.ShowHints, "hints", false,
		"Show the hover hint of each setting.")
}

func AddCallArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().BoolVar(&o.ShowCalls, "calls", false,
		"Also list every toolkit call made while rendering.")
}
