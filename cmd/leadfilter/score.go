package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/exclusion"
	"github.com/jonesrussell/leadfilter/internal/pipeline"
	"github.com/jonesrussell/leadfilter/internal/scoring"
)

var (
	scoreConfigPath  string
	scoreTemplate    string
	scoreInputPath   string
	scoreOutputDir   string
	scoreConcurrency int
	scoreJSON        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CSV batch of leads and partition them by priority",
	Long: `Reads leads from a CSV file (header: address,company,country,description,source_context),
runs the hard-exclusion rules and the relevance scorer, and writes one CSV per
priority tier plus an exclusion audit report.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "filter configuration YAML file")
	scoreCmd.Flags().StringVarP(&scoreTemplate, "template", "t", config.TemplateDefault,
		"built-in configuration template used when no config file is given")
	scoreCmd.Flags().StringVarP(&scoreInputPath, "input", "i", "", "input CSV file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputDir, "output-dir", "o", "",
		"directory for per-tier CSVs and the exclusion report")
	scoreCmd.Flags().IntVar(&scoreConcurrency, "concurrency", 4, "worker pool size")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the full result as JSON instead of a table")
	_ = scoreCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if verr := cfg.Validate(); verr != nil {
		return verr
	}

	engine, err := exclusion.NewEngine(cfg, log)
	if err != nil {
		return fmt.Errorf("build exclusion engine: %w", err)
	}
	aggregator := scoring.NewAggregator(cfg, log)
	p := pipeline.New(engine, aggregator, log, pipeline.WithConcurrency(scoreConcurrency))

	f, err := os.Open(scoreInputPath)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	leads, err := readLeads(f)
	if err != nil {
		return err
	}

	result := p.Process(cmd.Context(), leads)

	if scoreOutputDir != "" {
		if err := writeResult(scoreOutputDir, result); err != nil {
			return err
		}
	}
	if scoreJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printSummary(cmd, result)
	return nil
}

// resolveConfig prefers an explicit config file over the template preset.
func resolveConfig() (*config.FilterConfig, error) {
	if scoreConfigPath != "" {
		return config.Load(scoreConfigPath)
	}
	return config.FromTemplate(scoreTemplate)
}

func writeResult(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, tier := range domain.Priorities() {
		results := result.Partition(tier)
		if len(results) == 0 {
			continue
		}
		path := filepath.Join(dir, strings.ToLower(string(tier))+".csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := writeScoredCSV(f, results); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(result.Exclusions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal exclusion report: %w", err)
	}
	path := filepath.Join(dir, "exclusions.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write exclusion report: %w", err)
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *pipeline.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetTitle("Run %s", result.RunID)
	t.AppendHeader(table.Row{"Tier", "Leads"})
	for _, tier := range domain.Priorities() {
		t.AppendRow(table.Row{string(tier), len(result.Partition(tier))})
	}
	t.AppendRow(table.Row{"hard-excluded", len(result.Exclusions)})
	if result.Skipped > 0 {
		t.AppendRow(table.Row{"skipped", result.Skipped})
	}
	t.AppendFooter(table.Row{"scored", result.Statistics.Total})
	t.Render()

	if result.Statistics.Total > 0 {
		cmd.Printf("average %.2f  min %.2f  max %.2f  (%s)\n",
			result.Statistics.Average, result.Statistics.Min, result.Statistics.Max,
			result.Duration.Round(time.Millisecond))
	}
}
