package pipeline

import (
	"context"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// NewRetryFunc makes a retry policy running op up to attempts times with exponential backoff
// starting at delay. With attempts <= 1 op runs once.
func NewRetryFunc(attempts int, delay time.Duration) func(ctx context.Context, op func() error) error {
	if attempts <= 1 {
		return func(_ context.Context, op func() error) error { return op() }
	}
	return func(ctx context.Context, op func() error) error {
		return repeater.NewBackoff(attempts, delay, repeater.WithMaxDelay(30*time.Second)).Do(ctx, op)
	}
}
