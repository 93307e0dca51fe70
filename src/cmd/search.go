package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nowledge/deep-mem/src/search"
)

var (
	searchLimit     int
	searchThreads   int
	searchVerbose   bool
	searchNoThreads bool
	searchLabels    string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search memories with progressive thread discovery",
	Long: `Search memories semantically and discover the threads they came from.

Examples:
  deep-mem search "Python async pitfalls"
  deep-mem search "project architecture" --limit 5 --verbose
  deep-mem search "deployment" --no-threads --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		searcher := search.NewSearcher(apiClient)
		result, err := searcher.Search(query, search.Options{
			MemoryLimit:   searchLimit,
			ThreadLimit:   searchThreads,
			FilterLabels:  searchLabels,
			ExpandThreads: !searchNoThreads,
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if getOutputFormat() == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(result)
		}

		newRenderer(searchVerbose).Result(result)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "max memories to return")
	searchCmd.Flags().IntVarP(&searchThreads, "threads", "t", 5, "max related threads")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "show more content")
	searchCmd.Flags().BoolVar(&searchNoThreads, "no-threads", false, "skip related thread discovery")
	searchCmd.Flags().StringVar(&searchLabels, "labels", "", "comma-separated labels to filter by")

	rootCmd.AddCommand(searchCmd)
}
