package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/salarymoon/internal/chart"
	"github.com/iwvelando/salarymoon/internal/comparison"
	"github.com/iwvelando/salarymoon/internal/report"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"github.com/iwvelando/salarymoon/pkg/output"
	"github.com/iwvelando/salarymoon/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	compareConfig       string
	compareOutputFormat string
	compareChartPath    string
	compareReportPath   string
	compareInput        comparison.Input
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run a single comparison and print it",
	Long:  `Compare employee and freelancer income for one set of inputs, print the result and optionally write the chart PNG and PDF report.`,
	RunE:  runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareConfig, "config", "", "path to jurisdiction rate configuration (default: built-in table)")
	f.StringVar(&compareOutputFormat, "output-format", "", "type of output override: pretty, csv")
	f.StringVar(&compareChartPath, "chart", "", "write the comparison chart PNG to this path")
	f.StringVar(&compareReportPath, "report", "", "write the PDF report to this path")
	f.StringVar(&compareInput.Jurisdiction, "province", "", "jurisdiction name, e.g. Ontario")
	f.Float64Var(&compareInput.GrossSalary, "salary", 0, "employee gross annual salary")
	f.Float64Var(&compareInput.FreelanceHourlyRate, "freelance-rate", 0, "freelance hourly rate")
	f.Float64Var(&compareInput.HoursPerWeek, "hours-per-week", 0, "freelance hours per week")
	f.Float64Var(&compareInput.WeeksPerYear, "weeks-per-year", 0, "freelance weeks per year")
	for _, name := range []string{"province", "salary", "freelance-rate", "hours-per-week", "weeks-per-year"} {
		_ = compareCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	conf, err := loadRates(compareConfig)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if compareOutputFormat != "" {
		outputFormat = compareOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	rates, err := conf.RateTable()
	if err != nil {
		return fmt.Errorf("failed to build rate table: %w", err)
	}

	result, err := comparison.Compare(rates, compareInput)
	if err != nil {
		return err
	}
	logger.Debug("comparison computed",
		zap.String("op", "main.runCompare"),
		zap.String("jurisdiction", result.Jurisdiction),
		zap.Float64("requiredHours", result.RequiredFreelanceHours),
	)

	if err := writeResult(cmd.OutOrStdout(), outputFormat, result); err != nil {
		return err
	}

	charts := chart.NewRenderer(logger)
	if compareChartPath != "" {
		png, err := charts.Render(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(compareChartPath, png, 0644); err != nil {
			return fmt.Errorf("failed to write chart to %s: %w", compareChartPath, err)
		}
	}

	if compareReportPath != "" {
		var buf bytes.Buffer
		if err := report.NewGenerator(logger, charts).Write(&buf, result); err != nil {
			return err
		}
		if err := os.WriteFile(compareReportPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", compareReportPath, err)
		}
	}

	return nil
}

func writeResult(w io.Writer, outputFormat string, result comparison.Result) error {
	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, result)
	default:
		return output.PrettyFormat(w, result)
	}
}
