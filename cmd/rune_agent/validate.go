package main

import (
	"fmt"
	"os"

	"github.com/jonathan/rune-augmenter/internal/schemas"
	"github.com/jonathan/rune-augmenter/internal/store"
	"github.com/spf13/cobra"
)

var validateCommand = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a rune dataset against the embedded JSON Schema",
	Long:  "Checks the dataset's structure and record fields without contacting the completion service.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	path := args[0]

	if err := schemas.ValidateRuneDefinitionsFile(path); err != nil {
		return err
	}

	records, err := store.Load(path)
	if err != nil {
		return err
	}

	complete := 0
	for i := range records {
		if records[i].Complete() {
			complete++
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s: %d records valid, %d complete, %d pending\n",
		path, len(records), complete, len(records)-complete)
	return nil
}
