package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Amanile/epf-calculator/pkg/constants"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "epfcalc",
	Short: "Employees' Provident Fund maturity calculator",
	Long: "Project Employees' Provident Fund balances year by year, compare\n" +
		"contribution scenarios, and serve the web calculator.",
	RunE:         runProject,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", constants.DefaultConfigFile, "path to scenario configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
}
