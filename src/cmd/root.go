// Package cmd implements the deep-mem CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nowledge/deep-mem/src/api"
	"github.com/nowledge/deep-mem/src/display"
	"github.com/nowledge/deep-mem/src/logging"
	"github.com/nowledge/deep-mem/src/paths"
	"github.com/nowledge/deep-mem/src/version"
)

const defaultAPIURL = "http://localhost:14243"

// ErrConfig marks configuration problems. main exits 2 for these
// instead of the generic 1.
var ErrConfig = errors.New("configuration error")

var (
	cfgFile string
	server  string
	token   string
	output  string
	noColor bool
	timeout int

	apiClient *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "deep-mem",
	Short: "Deep memory search with progressive disclosure",
	Long: `deep-mem searches a Nowledge Mem knowledge base: memory summaries
first, related thread references second, full thread content only on
explicit request via 'expand'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Local-only commands never need a client or a token.
		switch cmd.Name() {
		case "config", "version", "help", "completion":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		tokenVal := resolveToken()
		if tokenVal == "" && requiresAuth(cmd.Name()) {
			return fmt.Errorf("%w: MEM_AUTH_TOKEN is required; set it in the environment or run 'deep-mem config set server.token <token>'", ErrConfig)
		}

		api.UserAgent = version.Get().UserAgent("deep-mem")
		apiClient = api.NewClient(resolveServerURL(), tokenVal, resolveTimeout())
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// initLogging must run after initConfig so logging.level from the
	// config file takes effect.
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "Mem server URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API auth token")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 0, "request timeout in seconds")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
		viper.SetConfigName("cli")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("server.url", defaultAPIURL)
	viper.SetDefault("server.token", "")
	viper.SetDefault("server.timeout", 30)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", "auto")
	viper.SetDefault("logging.level", "warn")

	viper.ReadInConfig()
}

func initLogging() {
	if err := logging.Init(); err != nil {
		// Non-fatal - slog falls back to its stderr default
		fmt.Fprintf(os.Stderr, "Warning: could not initialize log file: %v\n", err)
	}
}

// requiresAuth reports whether a command refuses to run without a
// token. diagnose runs without one so it can report the problem
// itself.
func requiresAuth(name string) bool {
	switch name {
	case "search", "expand", "threads", "tui":
		return true
	}
	return false
}

// Resolution order for connection settings: flag, environment,
// config file, default.

func resolveServerURL() string {
	if server != "" {
		return server
	}
	if env := os.Getenv("MEM_API_URL"); env != "" {
		return env
	}
	if v := viper.GetString("server.url"); v != "" {
		return v
	}
	return defaultAPIURL
}

func resolveToken() string {
	if token != "" {
		return token
	}
	if env := strings.TrimSpace(os.Getenv("MEM_AUTH_TOKEN")); env != "" {
		return env
	}
	return strings.TrimSpace(viper.GetString("server.token"))
}

func resolveTimeout() int {
	if timeout > 0 {
		return timeout
	}
	if env := os.Getenv("MEM_TIMEOUT"); env != "" {
		if v, err := strconv.Atoi(env); err == nil && v > 0 {
			return v
		}
	}
	if v := viper.GetInt("server.timeout"); v > 0 {
		return v
	}
	return 30
}

func getOutputFormat() string {
	if output != "" {
		return output
	}
	return viper.GetString("output.format")
}

func newRenderer(verbose bool) *display.Renderer {
	return display.New(os.Stdout, display.Options{
		Verbose: verbose,
		Styles:  display.AutoStyles(noColor),
	})
}
