package main

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/leadfilter/internal/config"
)

var templatesExport string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in configuration templates",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesExport, "export", "",
		"print the named template as YAML instead of listing")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if templatesExport != "" {
		cfg, err := config.FromTemplate(templatesExport)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		cmd.Print(string(data))
		return nil
	}

	for _, name := range config.Templates() {
		cfg, err := config.FromTemplate(name)
		if err != nil {
			return err
		}
		cmd.Printf("%-22s %s / %s\n", name, cfg.Target.Country, cfg.Target.Industry)
	}
	return nil
}
