package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nowledge/deep-mem/src/search"
)

var threadsLimit int

var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "List recent thread summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.ThreadSummaries(threadsLimit)
		if err != nil {
			return fmt.Errorf("listing threads failed: %w", err)
		}

		threads := search.NormalizeThreads(resp.Threads)

		if getOutputFormat() == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(threads)
		}

		newRenderer(false).ThreadList(threads)
		return nil
	},
}

func init() {
	threadsCmd.Flags().IntVarP(&threadsLimit, "limit", "n", 50, "max threads to list")
	rootCmd.AddCommand(threadsCmd)
}
