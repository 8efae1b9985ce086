// Package main provides the entry point for the career recommendation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career recommendation pipeline",
	Long:  "career_agent parses resumes into structured career signals and produces ranked career recommendations by blending semantic similarity against a career-profile corpus with live labor-market data.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
