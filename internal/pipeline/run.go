// Package pipeline provides the high-level orchestration for the augmentation run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/rune-augmenter/internal/llm"
	"github.com/jonathan/rune-augmenter/internal/observability"
	"github.com/jonathan/rune-augmenter/internal/review"
	"github.com/jonathan/rune-augmenter/internal/schemas"
	"github.com/jonathan/rune-augmenter/internal/store"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	TargetPath string
	Provider   string
	Model      string
	APIKey     string
	MaxRetries int
	Save       bool
	Verbose    bool

	// Optional collaborator overrides, used by tests. When nil, production
	// implementations are wired from the fields above.
	Client    llm.Client
	Operator  review.OperatorChannel
	Clipboard review.Clipboard
	Out       io.Writer
}

// RunPipeline iterates the dataset in load order, dispatching each incomplete
// record through the two generation stages and accumulating token usage into
// a run-wide total.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	if _, err := os.Stat(opts.TargetPath); os.IsNotExist(err) {
		return &store.NotFoundError{Path: opts.TargetPath}
	}

	// Structural validation before decoding; surfaces field paths on failure
	if err := schemas.ValidateRuneDefinitionsFile(opts.TargetPath); err != nil {
		return fmt.Errorf("dataset validation failed: %w", err)
	}

	records, err := store.Load(opts.TargetPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d loaded\n", len(records))

	client := opts.Client
	if client == nil {
		cfg := &llm.Config{
			Provider: llm.Provider(opts.Provider),
			Model:    opts.Model,
		}
		inner, err := llm.NewClient(ctx, cfg, opts.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create completion client: %w", err)
		}
		client = llm.NewRetryClient(inner, llm.RetryPolicy{MaxAttempts: opts.MaxRetries})
	}
	defer func() { _ = client.Close() }()

	operator := opts.Operator
	if operator == nil {
		operator = review.NewConsoleOperator(os.Stdin, out)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = review.SystemClipboard{}
	}

	reviewer := review.NewReviewer(client, operator, clip, out)

	runID := uuid.New()
	if opts.Verbose {
		fmt.Fprintf(out, "run %s using model %s\n", runID, client.Model())
	}

	totalTokens := 0
	for i := range records {
		rec := &records[i]
		if rec.Complete() {
			continue
		}

		fmt.Fprintf(out, "%d -:\n\n", i)
		if opts.Verbose {
			printer.PrintRecord(i, rec)
		}

		recordTokens := 0
		changed := false

		if len(rec.Alternatives) == 0 {
			items, tokens, err := reviewer.ReviewAlternatives(ctx, rec)
			recordTokens += tokens
			if err != nil {
				return err
			}
			if len(items) > 0 {
				rec.Alternatives = items
				changed = true
				if opts.Verbose {
					printer.PrintItems("ALTERNATIVES", items)
				}
			}
		}

		if len(rec.Alternatives) > 0 && len(rec.Summaries) == 0 {
			summaries, tokens, err := reviewer.ReviewSummaries(ctx, rec.Alternatives)
			recordTokens += tokens
			if err != nil {
				return err
			}
			if len(summaries) > 0 {
				rec.Summaries = summaries
				changed = true
				if opts.Verbose {
					printer.PrintItems("SUMMARIES", summaries)
				}
			}
		}

		totalTokens += recordTokens
		fmt.Fprintf(out, "tokens: %d\n", totalTokens)
		if opts.Verbose {
			printer.PrintTokenSummary(recordTokens, totalTokens)
		}

		// Persist after each record so a crash loses at most the record in flight
		if opts.Save && changed {
			if err := store.Save(opts.TargetPath, records); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "tokens: %d\n", totalTokens)
	return nil
}
