package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Validate CSV files and API connectivity without generating reports",
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing CSV-based configuration...")
	fmt.Println()

	a, err := bootstrap(cmd.Context())
	if err != nil {
		fmt.Printf("[FAIL] Configuration: %v\n", err)
		return fmt.Errorf("configuration invalid")
	}
	defer a.Close()

	failed := false

	if a.source.ProspectsExist() {
		fmt.Printf("[ OK ] Prospects CSV: %d records found\n", len(a.source.Prospects(-1)))
	} else {
		fmt.Printf("[FAIL] Prospects CSV not found: %s\n", a.cfg.Files.ProspectsCSV)
		failed = true
	}

	if a.source.MarketDataExists() {
		fmt.Printf("[ OK ] Market Data CSV: %d sectors found\n", len(a.source.MarketData()))
	} else {
		fmt.Printf("[FAIL] Market Data CSV not found: %s\n", a.cfg.Files.MarketDataCSV)
		failed = true
	}

	pingCtx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	if err := a.client.Ping(pingCtx); err != nil {
		fmt.Printf("[FAIL] Generation API connection: %v\n", err)
		failed = true
	} else {
		fmt.Println("[ OK ] Generation API connection: OK")
	}

	fmt.Printf("\nOutput directory: %s\n", a.cfg.Files.OutputDir)

	if failed {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("\nAll tests completed")
	return nil
}
