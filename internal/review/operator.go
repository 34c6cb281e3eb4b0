// Package review implements the interactive accept/reject loops that gate
// each generation stage on an operator decision.
package review

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// OperatorChannel is the capability interface for asking the operator a
// yes/no question. The review loops depend only on this interface so tests
// can script the answers.
type OperatorChannel interface {
	// Confirm asks a yes/no question; an empty answer takes the default.
	Confirm(question string, def bool) (bool, error)
}

// ConsoleOperator asks yes/no questions through a promptui confirm prompt.
type ConsoleOperator struct {
	in  io.ReadCloser
	out io.WriteCloser
}

// NewConsoleOperator creates an operator channel over the given streams.
func NewConsoleOperator(in io.Reader, out io.Writer) *ConsoleOperator {
	rc, ok := in.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(in)
	}
	wc, ok := out.(io.WriteCloser)
	if !ok {
		wc = nopWriteCloser{out}
	}
	return &ConsoleOperator{in: rc, out: wc}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Confirm shows the question with a [y/N] hint. A "y" answer confirms, an
// empty answer takes the default, and any other answer declines. EOF on the
// input stream takes the default.
func (c *ConsoleOperator) Confirm(question string, def bool) (bool, error) {
	defaultAnswer := "n"
	if def {
		defaultAnswer = "y"
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Default:   defaultAnswer,
		Stdin:     c.in,
		Stdout:    c.out,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrEOF):
		return def, nil
	default:
		return false, fmt.Errorf("failed to read operator answer: %w", err)
	}
}
