package main

// Notes:
// - notifyContext: we only test cancellation via stop() and parent
//   propagation; OS signal delivery is non-deterministic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		select {
		case <-ctx.Done():
			t.Fatal("context should not be cancelled initially")
		default:
		}
		stop()
		<-ctx.Done()
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
		if ctx.Err() == nil {
			t.Error("expected context error after parent cancel")
		}
	})
}
