package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/leadfilter/internal/config"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a filter configuration file",
	Long: `Parses the configuration and checks every invariant: weight ranges and sum,
threshold ordering, bonus factors, keyword presence, vertical names, and
suspicious-pattern syntax. All violations are reported in one pass.`,
	RunE: runValidateConfig,
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "configuration YAML file (required)")
	_ = validateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(validateCmd)
}

func runValidateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		var perr *config.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%s is not valid YAML: %w", validateConfigPath, perr.Err)
		}
		return err
	}

	verr := cfg.Validate()
	if verr == nil {
		cmd.Printf("%s is valid (%s %s)\n",
			validateConfigPath, cfg.Metadata.Name, cfg.Metadata.Version)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Field", "Problem"})
	for _, issue := range verr.Issues {
		t.AppendRow(table.Row{issue.Field, issue.Message})
	}
	t.Render()
	return fmt.Errorf("%s has %d invalid field(s)", validateConfigPath, len(verr.Issues))
}
