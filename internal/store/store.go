// Package store loads and persists the rune definitions dataset.
package store

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// namePrefix is the fixed token carried by dataset names, stripped for display.
const namePrefix = "RUNA"

// Kind discriminates a rune's orientation.
type Kind string

// Kind values accepted by the dataset.
const (
	KindNormal Kind = "normal"
	KindInvert Kind = "invert"
)

// RuneDefinition is one entry of the source dataset. Alternatives and
// summaries are absent until the matching generation stage completes.
type RuneDefinition struct {
	RuneName     string   `json:"rune_name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Kind         Kind     `json:"type" validate:"required,oneof=normal invert"`
	Alternatives []string `json:"alternatives,omitempty"`
	Summaries    []string `json:"summaries,omitempty"`
}

// DisplayName returns the rune name with the fixed prefix token stripped.
func (r *RuneDefinition) DisplayName() string {
	name := r.RuneName
	if strings.HasPrefix(name, namePrefix) {
		name = strings.TrimSpace(name[len(namePrefix):])
	}
	return name
}

// Inverted reports whether the rune carries the inverted orientation.
func (r *RuneDefinition) Inverted() bool {
	return r.Kind == KindInvert
}

// Complete reports whether both generation stages have produced output.
func (r *RuneDefinition) Complete() bool {
	return len(r.Alternatives) > 0 && len(r.Summaries) > 0
}

// Load reads the dataset file and returns its records in document order.
// Optional fields default to absent when not present in the JSON.
func Load(path string) ([]RuneDefinition, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to read file " + path,
			Cause:   err,
		}
	}

	var records []RuneDefinition
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	validate := validator.New()
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, &ValidationError{
				Index:   i,
				Message: "record has missing or mistyped fields",
				Cause:   err,
			}
		}
	}

	return records, nil
}

// Save writes the full record slice back to path as indented JSON.
// Records are written in the order given, preserving document order.
func Save(path string, records []RuneDefinition) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &LoadError{
			Message: "failed to marshal records",
			Cause:   err,
		}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &LoadError{
			Message: "failed to write file " + path,
			Cause:   err,
		}
	}
	return nil
}
