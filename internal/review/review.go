package review

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/rune-augmenter/internal/llm"
	"github.com/jonathan/rune-augmenter/internal/parsing"
	"github.com/jonathan/rune-augmenter/internal/prompts"
	"github.com/jonathan/rune-augmenter/internal/store"
)

// Reviewer runs the interactive review loops for both generation stages.
type Reviewer struct {
	client    llm.Client
	operator  OperatorChannel
	clipboard Clipboard
	out       io.Writer
}

// NewReviewer wires a reviewer from its collaborators.
func NewReviewer(client llm.Client, operator OperatorChannel, clipboard Clipboard, out io.Writer) *Reviewer {
	return &Reviewer{
		client:    client,
		operator:  operator,
		clipboard: clipboard,
		out:       out,
	}
}

// ReviewAlternatives runs stage 1 for one record: build the prompt, let the
// operator decide whether to ask, parse the completion into candidate items
// and offer a single copy-to-clipboard decision covering the whole list.
// A declined ask abandons the stage for this run and returns no items.
// Returns the parsed items and the tokens consumed.
func (r *Reviewer) ReviewAlternatives(ctx context.Context, rec *store.RuneDefinition) ([]string, int, error) {
	prompt := prompts.BuildAlternativesPrompt(rec)
	fmt.Fprintf(r.out, "%s\n\n", prompt)

	confirmed, err := r.operator.Confirm("Ask the completion service for this prompt?", false)
	if err != nil {
		return nil, 0, err
	}
	if !confirmed {
		fmt.Fprintln(r.out, "Ignored")
		return nil, 0, nil
	}

	completion, err := r.client.Complete(ctx, llm.Conversation(prompts.SystemInstruction(), prompt))
	if err != nil {
		return nil, 0, err
	}
	fmt.Fprintf(r.out, "Usage tokens: %d\n", completion.Usage.TotalTokens)

	items := parsing.ParseItems(completion.Content)

	fmt.Fprintln(r.out, "Items:")
	for i, item := range items {
		fmt.Fprintf(r.out, "%d - %s\n\n", i+1, item)
	}

	if err := r.offerCopy(items); err != nil {
		return nil, 0, err
	}

	return items, completion.Usage.TotalTokens, nil
}

// ReviewSummaries runs stage 2 over the alternatives already produced for a
// record: one summary prompt per alternative, each gated on an ask decision
// and an add decision. A summary is kept only when the operator accepts it.
// Returns the accepted summaries and the tokens consumed.
func (r *Reviewer) ReviewSummaries(ctx context.Context, alternatives []string) ([]string, int, error) {
	var summaries []string
	totalTokens := 0

	for i, alternative := range alternatives {
		prompt := prompts.BuildSummaryPrompt(alternative)
		fmt.Fprintf(r.out, "%d: %s\n\n", i+1, prompt)

		confirmed, err := r.operator.Confirm("Ask the completion service for this prompt?", false)
		if err != nil {
			return nil, totalTokens, err
		}
		if !confirmed {
			fmt.Fprintln(r.out, "Ignored")
			continue
		}

		completion, err := r.client.Complete(ctx, llm.Conversation(prompts.SystemInstruction(), prompt))
		if err != nil {
			return nil, totalTokens, err
		}
		fmt.Fprintf(r.out, "Usage tokens: %d\n", completion.Usage.TotalTokens)
		totalTokens += completion.Usage.TotalTokens

		fmt.Fprintf(r.out, "%s\n\n", completion.Content)
		accepted, err := r.operator.Confirm("Add?", true)
		if err != nil {
			return nil, totalTokens, err
		}
		if accepted {
			summaries = append(summaries, completion.Content)
			fmt.Fprintf(r.out, "Added!\n\n")
		}
	}

	fmt.Fprintln(r.out, "Summaries:")
	for i, summary := range summaries {
		fmt.Fprintf(r.out, "%d - %s\n\n", i+1, summary)
	}

	if err := r.offerCopy(summaries); err != nil {
		return nil, totalTokens, err
	}

	return summaries, totalTokens, nil
}

// offerCopy asks the operator whether to export items to the clipboard.
// An empty list is not offered; there is nothing to export.
func (r *Reviewer) offerCopy(items []string) error {
	if len(items) == 0 {
		return nil
	}
	confirmed, err := r.operator.Confirm("Copy?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if err := r.clipboard.WriteAll(FormatClipboard(items)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Fprintf(r.out, "Copied!\n\n")
	return nil
}
