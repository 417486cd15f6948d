package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snapcheck/internal/config"
	"snapcheck/internal/logging"
)

var (
	// Global flags
	verbose    bool
	policyPath string

	policy config.Policy
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "snapcheck",
	Short: "snapcheck - golden-file comparison and test mute tooling",
	Long: `snapcheck compares test output against stored golden files and
inspects the ignore directives that mute tests per execution backend.

Missing golden files are generated locally and fail the invocation so
the baseline gets reviewed; in CI they are a hard failure.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if policyPath != "" {
			policy, err = config.Load(policyPath)
			if err != nil {
				return fmt.Errorf("failed to load policy: %w", err)
			}
		} else {
			policy = config.FromEnv()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "path to a YAML policy file")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(directivesCmd)
	rootCmd.AddCommand(ignoredCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an Execute error to the process exit code, so every
// exit runs the PersistentPostRun logger flush first.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errNotIgnored) {
		return 2
	}
	return 1
}
