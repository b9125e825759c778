// Package bound provides a wall-clock-bounded wrapper for asynchronous
// operations. Every async boundary in the discovery core pairs with a
// timeout through it, so loading states always reach a terminal outcome.
package bound

import (
	"context"
	"errors"
	"time"
)

// Outcome tags the result of a bounded operation
type Outcome int

const (
	Ok Outcome = iota
	TimedOut
	Errored
)

// Result carries the tagged outcome of a bounded operation
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Err     error
}

// Run executes fn bounded by the given timeout. The returned result is
// Ok, TimedOut or Errored. The underlying call is not cancelled
// retroactively beyond context cancellation; if it resolves after the
// deadline its value is discarded.
func Run[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) Result[T] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type completion struct {
		value T
		err   error
	}
	// Buffered so a late completion never leaks the goroutine.
	done := make(chan completion, 1)

	go func() {
		value, err := fn(ctx)
		done <- completion{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result[T]{Outcome: TimedOut, Value: zero}
		}
		return Result[T]{Outcome: Errored, Value: zero, Err: ctx.Err()}
	case c := <-done:
		if c.err != nil {
			var zero T
			if errors.Is(c.err, context.DeadlineExceeded) {
				return Result[T]{Outcome: TimedOut, Value: zero}
			}
			return Result[T]{Outcome: Errored, Value: zero, Err: c.err}
		}
		return Result[T]{Outcome: Ok, Value: c.value}
	}
}
