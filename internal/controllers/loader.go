package controllers

import (
	"context"
	"sync/atomic"
)

// Loader runs at most one load per logical slot. Restart associates each
// request with a monotonically increasing token; a result is delivered only
// if its token is still the latest outstanding one, so work abandoned by a
// newer request is dropped when it eventually finishes. Delivery happens at
// most once per request.
type Loader[T any] struct {
	token atomic.Uint64
}

// NewLoader creates a new single-slot loader
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{}
}

// Restart abandons any in-flight load and starts a new one on a background
// goroutine. The previous request's result is not awaited; it is discarded
// when it shows up stale.
func (l *Loader[T]) Restart(ctx context.Context, load func(context.Context) (T, error), deliver func(T, error)) {
	seq := l.token.Add(1)

	go func() {
		result, err := load(ctx)
		if l.token.Load() != seq {
			// A newer request replaced this one
			return
		}
		deliver(result, err)
	}()
}
