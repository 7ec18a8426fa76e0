// Package main provides the entry point for the TalentScout intake assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_scout",
	Short: "TalentScout Hiring Assistant",
	Long:  "TalentScout guides a job candidate through a scripted intake dialogue, collects their profile, asks generated technical questions, and persists the results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
