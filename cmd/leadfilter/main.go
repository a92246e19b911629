// Command leadfilter qualifies batches of email leads: it applies the
// hard-exclusion rules, scores the survivors, and partitions them into
// priority tiers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/leadfilter/internal/logger"
)

var (
	logLevel string
	log      logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "leadfilter",
	Short:         "Lead qualification: exclusion, scoring, and prioritization",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(logger.Config{Level: logLevel})
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
