package prompts

import "github.com/jonathan/rune-augmenter/internal/store"

// generationFile is the embedded prompt file for the two generation stages.
const generationFile = "generation.json"

// invertQualifier is appended after the rune name for inverted runes.
const invertQualifier = " invertida"

// SystemInstruction returns the system message sent with every completion request.
func SystemInstruction() string {
	return MustGet(generationFile, "system")
}

// BuildAlternativesPrompt renders the stage-1 prompt asking for ten
// paraphrased paragraphs of the rune's description. The wording is fixed;
// downstream parsing and operator review depend on its structure.
func BuildAlternativesPrompt(rec *store.RuneDefinition) string {
	invert := ""
	if rec.Inverted() {
		invert = invertQualifier
	}
	return Format(MustGet(generationFile, "alternatives"), map[string]string{
		"RuneName":    rec.DisplayName(),
		"Invert":      invert,
		"Description": rec.Description,
	})
}

// BuildSummaryPrompt renders the stage-2 prompt asking for a concise summary
// of one alternative, with nothing added.
func BuildSummaryPrompt(text string) string {
	return Format(MustGet(generationFile, "summary"), map[string]string{
		"Text": text,
	})
}
