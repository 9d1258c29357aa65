package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camilogonzalez/resumeia/internal/ats"
	"github.com/camilogonzalez/resumeia/internal/schemas"
	"github.com/camilogonzalez/resumeia/internal/types"
)

var (
	analyzeCVPath  string
	analyzeJobPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score CV content against ATS heuristics",
	Long: `Analyze a CV content JSON file and print the compatibility report.
Runs entirely offline; pass a job description file to score keyword coverage
against a specific posting.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVPath, "cv", "", "Path to CV content JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to a plain-text job description file")
	_ = analyzeCmd.MarkFlagRequired("cv")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cvBytes, err := os.ReadFile(analyzeCVPath)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	if err := schemas.ValidateCVContent(string(cvBytes)); err != nil {
		return fmt.Errorf("CV content is not valid: %w", err)
	}

	var cv types.CVContent
	if err := json.Unmarshal(cvBytes, &cv); err != nil {
		return fmt.Errorf("failed to parse CV content: %w", err)
	}

	var jobRequirements string
	if analyzeJobPath != "" {
		jobBytes, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobRequirements = string(jobBytes)
	}

	result := ats.Analyze(&cv, jobRequirements)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
