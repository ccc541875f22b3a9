package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Recruitin CSV report generator",
	Long: `Generates Dutch recruitment market reports from prospect and market
CSV data. Reports are written as Markdown files; the serve command exposes
the same workflow as a webhook for Zapier-style automation.`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load() // .env is optional

	rootCmd.AddCommand(serveCmd, weeklyCmd, monthlyCmd, testCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
