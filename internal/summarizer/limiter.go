package summarizer

import (
	"context"
	"sync"
)

// limiter runs functions in goroutines, at most cap(slots) at a time
type limiter struct {
	slots chan struct{}
	wg    sync.WaitGroup
}

func newLimiter(n int) *limiter {
	return &limiter{slots: make(chan struct{}, n)}
}

// Go waits for a free slot and runs fn in a new goroutine. If ctx ends first,
// fn is not run and ctx.Err() is returned.
func (l *limiter) Go(ctx context.Context, fn func()) error {
	select {
	case l.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() { <-l.slots }()
		fn()
	}()
	return nil
}

// Wait blocks until every started function has returned
func (l *limiter) Wait() {
	l.wg.Wait()
}
