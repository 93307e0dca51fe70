package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nowledge/deep-mem/src/api"
)

var expandCmd = &cobra.Command{
	Use:   "expand <thread_id>",
	Short: "View the full content of a thread",
	Long: `Fetch one thread and render every message in it.

Example:
  deep-mem expand abc12345-67de-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threadID := args[0]

		detail, err := apiClient.GetThread(threadID)
		if err != nil {
			if errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("thread %s not found", threadID)
			}
			return fmt.Errorf("expand failed: %w", err)
		}

		if getOutputFormat() == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(map[string]any{
				"thread":   detail.Thread,
				"messages": detail.Messages,
			})
		}

		newRenderer(false).Thread(detail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
