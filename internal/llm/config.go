// Package llm provides centralized completion-service configuration and
// client abstractions with per-request token usage accounting.
package llm

// Provider represents a completion service provider
type Provider string

// Provider constants define supported completion providers
const (
	// ProviderOpenAI is the OpenAI chat completions provider (default)
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// defaultModels maps each provider to the model used when none is configured.
var defaultModels = map[Provider]string{
	ProviderOpenAI: "gpt-3.5-turbo",
	ProviderGemini: "gemini-2.5-flash",
}

// Config holds the completion client configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently OpenAI)
func DefaultConfig() *Config {
	return &Config{Provider: ProviderOpenAI}
}

// ResolvedModel returns the configured model, falling back to the provider default.
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}
