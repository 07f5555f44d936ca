package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Amanile/epf-calculator/internal/config"
	"github.com/Amanile/epf-calculator/internal/logging"
	"github.com/Amanile/epf-calculator/internal/projection"
	"github.com/Amanile/epf-calculator/pkg/constants"
	"github.com/Amanile/epf-calculator/pkg/output"
	"github.com/Amanile/epf-calculator/pkg/validation"
)

var (
	flagOutputFormat string
	flagAllYears     bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project EPF balances for the configured scenarios",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagOutputFormat, "output-format", "", "output format override: pretty, csv")
	projectCmd.Flags().BoolVar(&flagAllYears, "all-years", false, "print every year instead of condensing long projections")
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", flagConfig, err)
	}

	logger, err := logging.NewLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if flagOutputFormat != "" {
		outputFormat = flagOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := projection.RunScenarios(logger, *conf)
	if err != nil {
		return fmt.Errorf("failed to project scenarios: %w", err)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results, flagAllYears)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}

	return nil
}
