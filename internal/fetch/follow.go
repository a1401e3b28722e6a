package fetch

import (
	"context"
	"sync"
)

// Follow executes the operation every time deps delivers a value that differs
// from the previous one according to same. A nil same treats every value as a
// change. Each trigger supersedes the one before it, so only the outcome for
// the latest dependencies is ever observed.
//
// Follow returns when ctx is done or deps is closed, after the last triggered
// call has settled.
func (c *Controller[P, R]) Follow(ctx context.Context, deps <-chan P, same func(prev, next P) bool, opts ...ExecOption) error {
	var (
		wg   sync.WaitGroup
		prev P
		seen bool
	)
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-deps:
			if !ok {
				return nil
			}
			if seen && same != nil && same(prev, next) {
				continue
			}
			prev, seen = next, true

			started := make(chan struct{})
			wg.Add(1)
			go func() {
				defer wg.Done()
				// Outcomes reach subscribers and callbacks; errors are logged by run.
				_, _ = c.run(ctx, next, started, opts)
			}()
			// The next trigger must not overtake this one.
			<-started
		}
	}
}
