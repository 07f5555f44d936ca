package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the epfcalc version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("epfcalc " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
