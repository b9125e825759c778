package bound

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_Ok(t *testing.T) {
	res := Run(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	assert.Equal(t, Ok, res.Outcome)
	assert.Equal(t, 42, res.Value)
	assert.NoError(t, res.Err)
}

func TestRun_TimedOut(t *testing.T) {
	res := Run(context.Background(), 20*time.Millisecond, func(ctx context.Context) (string, error) {
		time.Sleep(200 * time.Millisecond)
		return "late", nil
	})

	assert.Equal(t, TimedOut, res.Outcome)
	assert.Empty(t, res.Value)
}

func TestRun_Errored(t *testing.T) {
	boom := errors.New("boom")
	res := Run(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	assert.Equal(t, Errored, res.Outcome)
	assert.ErrorIs(t, res.Err, boom)
}

func TestRun_DeadlineErrorMapsToTimedOut(t *testing.T) {
	res := Run(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, context.DeadlineExceeded
	})

	assert.Equal(t, TimedOut, res.Outcome)
}

func TestRun_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Run(ctx, time.Second, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	assert.Equal(t, Errored, res.Outcome)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestRun_LateCompletionDoesNotBlock(t *testing.T) {
	done := make(chan struct{})
	res := Run(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		return 7, nil
	})

	assert.Equal(t, TimedOut, res.Outcome)

	// The wrapped call still finishes and its send does not leak
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wrapped call never completed")
	}
}
