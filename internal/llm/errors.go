package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APICallError represents a non-recoverable error from the completion endpoint
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// TimeoutError marks a transient timeout from the completion endpoint.
// Providers wrap their SDK-specific timeout conditions in this type so the
// retry layer can recognize them without knowing the provider.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion endpoint timed out: %v", e.Cause)
	}
	return "completion endpoint timed out"
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err is a transient timeout that may be retried.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
