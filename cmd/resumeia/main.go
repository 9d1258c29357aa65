// Package main provides the entry point for the resumeia HTTP API server
// and its offline analysis tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeia",
	Short: "Resumeia HTTP API Server",
	Long:  "Resumeia manages career profiles, generates job-tailored CVs, scores them against ATS heuristics and exports them as PDF via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
