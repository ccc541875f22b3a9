package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weeklyProspects int
var monthlySector string

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate weekly reports for the top prospects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		files, err := a.generator.WeeklyReports(cmd.Context(), weeklyProspects)
		if err != nil {
			return err
		}

		fmt.Printf("\nGenerated %d weekly reports:\n", len(files))
		for i, path := range files {
			fmt.Printf("%d. %s\n", i+1, path)
		}
		return nil
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Generate an aggregated sector report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		file, err := a.generator.MonthlyReport(cmd.Context(), monthlySector)
		if err != nil {
			return err
		}

		fmt.Printf("\nMonthly report generated:\n   %s\n", file)
		return nil
	},
}

func init() {
	weeklyCmd.Flags().IntVar(&weeklyProspects, "prospects", 10, "number of prospects for weekly reports")
	monthlyCmd.Flags().StringVar(&monthlySector, "sector", "all", "sector filter for the monthly report")
}
