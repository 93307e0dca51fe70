package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nowledge/deep-mem/src/api"
	"github.com/nowledge/deep-mem/src/display"
	"github.com/nowledge/deep-mem/src/terminal"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check configuration and API connectivity",
	Long: `Validate the CLI configuration and probe the Mem server.
Exits with code 0 only when every check passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiagnose(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(w io.Writer) error {
	styles := display.AutoStyles(noColor)
	syms := terminal.GetSymbols()
	ok := styles.Success.Render(syms.Success)
	fail := styles.Error.Render(syms.Error)

	fmt.Fprintf(w, "%s\n\n", styles.Title.Render("Checking configuration..."))

	serverURL := resolveServerURL()
	fmt.Fprintf(w, "%s API URL: %s\n", ok, serverURL)

	tokenVal := resolveToken()
	if tokenVal == "" {
		fmt.Fprintf(w, "%s Auth token: MEM_AUTH_TOKEN is not set\n", fail)
		return fmt.Errorf("%w: MEM_AUTH_TOKEN is required; set it in the environment or run 'deep-mem config set server.token <token>'", ErrConfig)
	}
	fmt.Fprintf(w, "%s Auth token: %s\n", ok, maskedToken)

	fmt.Fprintf(w, "\n%s\n\n", styles.Title.Render("Checking API connectivity..."))

	client := api.NewClient(serverURL, tokenVal, resolveTimeout())

	if _, err := client.SearchMemories("test", 1, "deep", ""); err != nil {
		fmt.Fprintf(w, "%s Memory search: %v\n", fail, err)
		return fmt.Errorf("memory search probe failed: %w", err)
	}
	fmt.Fprintf(w, "%s Memory search working\n", ok)

	if _, err := client.SearchThreads("test", 1, "full"); err != nil {
		fmt.Fprintf(w, "%s Thread search: %v\n", fail, err)
		return fmt.Errorf("thread search probe failed: %w", err)
	}
	fmt.Fprintf(w, "%s Thread search working\n", ok)

	fmt.Fprintf(w, "\n%s\n", styles.Success.Render("All checks passed!"))
	return nil
}

// maskedToken shows that a token exists without printing any of it.
const maskedToken = "********..."
