package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nowledge/deep-mem/src/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive search mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(apiClient)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
