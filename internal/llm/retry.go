package llm

import (
	"context"
	"fmt"
	"io"
	"os"
)

// RetryPolicy controls how transient timeouts are retried.
// MaxAttempts of 0 means unbounded: never give up on a timeout. This is
// acceptable because the pipeline is human-supervised and the operator can
// interrupt the process.
type RetryPolicy struct {
	MaxAttempts int
}

// RetryClient decorates a Client, retrying the identical request on transient
// timeouts. Any other error propagates unchanged.
type RetryClient struct {
	inner  Client
	policy RetryPolicy
	out    io.Writer
}

// NewRetryClient wraps inner with the given retry policy.
func NewRetryClient(inner Client, policy RetryPolicy) *RetryClient {
	return &RetryClient{inner: inner, policy: policy, out: os.Stdout}
}

// WithOutput redirects the retry diagnostics. Useful for tests.
func (c *RetryClient) WithOutput(out io.Writer) *RetryClient {
	c.out = out
	return c
}

// Complete retries the identical request until it succeeds, a non-timeout
// error occurs, the retry budget is exhausted, or ctx is canceled.
func (c *RetryClient) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	attempt := 0
	for {
		attempt++
		completion, err := c.inner.Complete(ctx, messages)
		if err == nil {
			return completion, nil
		}
		if !IsTimeout(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.policy.MaxAttempts > 0 && attempt >= c.policy.MaxAttempts {
			return nil, &APICallError{
				Message: fmt.Sprintf("gave up after %d timed-out attempts", attempt),
				Cause:   err,
			}
		}
		fmt.Fprintf(c.out, "%v\n", err)
	}
}

// Model returns the model identifier of the wrapped client
func (c *RetryClient) Model() string {
	return c.inner.Model()
}

// Close closes the wrapped client
func (c *RetryClient) Close() error {
	return c.inner.Close()
}
