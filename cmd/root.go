package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "investment-assistant",
	Short: "Personal investment record keeper with on-demand market data",
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
