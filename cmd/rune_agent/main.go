// Package main provides the entry point for the rune augmentation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rune_agent",
	Short: "Human-in-the-loop rune dataset augmentation",
	Long:  "rune_agent augments a JSON dataset of rune definitions with paraphrased alternatives and summaries generated by a chat-completion service, with an operator approving each step.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
