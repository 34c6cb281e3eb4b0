package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/rune-augmenter/internal/config"
	"github.com/jonathan/rune-augmenter/internal/pipeline"
	"github.com/spf13/cobra"
)

var augmentCommand = &cobra.Command{
	Use:   "augment <file.json>",
	Short: "Run the interactive augmentation pipeline over a rune dataset",
	Long: `Iterates the dataset in order, generating paraphrased alternatives and
summaries for each incomplete record through a chat-completion service,
with an operator approving each generation step.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAugmentCmd,
}

var (
	augmentConfigPath string
	augmentProvider   string
	augmentModel      string
	augmentAPIKey     string
	augmentMaxRetries int
	augmentSave       bool
	augmentVerbose    bool
)

func init() {
	// Config file flag (processed first)
	augmentCommand.Flags().StringVar(&augmentConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	augmentCommand.Flags().StringVar(&augmentProvider, "provider", "", "Completion provider: openai or gemini (default openai)")
	augmentCommand.Flags().StringVarP(&augmentModel, "model", "m", "", "Model identifier (defaults to the provider's default model)")
	augmentCommand.Flags().IntVar(&augmentMaxRetries, "max-retries", 0, "Timeout retry budget (0 = retry forever)")
	augmentCommand.Flags().BoolVar(&augmentSave, "save", false, "Write accepted results back to the dataset file")
	augmentCommand.Flags().BoolVarP(&augmentVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from OPENAI_API_KEY / GEMINI_API_KEY
	augmentCommand.Flags().StringVar(&augmentAPIKey, "api-key", "", "API key (optional, defaults to the provider's environment variable)")

	rootCmd.AddCommand(augmentCommand)
}

func runAugmentCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if augmentConfigPath != "" {
		loadedCfg, err := config.LoadConfig(augmentConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if augmentVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", augmentConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if len(args) > 0 {
		cfg.TargetPath = args[0]
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = augmentProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = augmentModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = augmentAPIKey
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries = augmentMaxRetries
	}
	if cmd.Flags().Changed("save") {
		cfg.Save = augmentSave
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = augmentVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider: config.ProviderOpenAI,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Validate required fields
	if cfg.TargetPath == "" {
		return fmt.Errorf("the dataset file path is required (positional argument or config)")
	}

	// Step 5: API key handling, resolved before any record is touched
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(apiKeyEnvVar(cfg.Provider))
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%s environment variable or --api-key flag is required", apiKeyEnvVar(cfg.Provider))
	}

	opts := pipeline.RunOptions{
		TargetPath: cfg.TargetPath,
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		APIKey:     cfg.APIKey,
		MaxRetries: cfg.MaxRetries,
		Save:       cfg.Save,
		Verbose:    cfg.Verbose,
	}

	return pipeline.RunPipeline(ctx, opts)
}

// apiKeyEnvVar returns the environment variable holding the credential for a provider.
func apiKeyEnvVar(provider string) string {
	if provider == config.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}
