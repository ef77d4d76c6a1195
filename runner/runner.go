// Package runner drives a set of independent fiber callstacks at a fixed
// rate, one goroutine per callstack. It is host-loop plumbing the core
// fiber package deliberately excludes; nothing here shares state between
// callstacks, matching a Callstack's own no-shared-state contract.
package runner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JarkkoPFC/fiber"
)

// Handle identifies a callstack registered with a Runner.
type Handle int

// Runner ticks a set of registered callstacks concurrently.
type Runner struct {
	mu     sync.Mutex
	stacks []*fiber.Callstack
	limit  int
	logger *zap.Logger
}

// Option configures a Runner constructed by New.
type Option func(*Runner)

// WithConcurrencyLimit bounds how many callstacks may be ticking at once.
// The zero value (the default) means unbounded.
func WithConcurrencyLimit(n int) Option {
	return func(r *Runner) { r.limit = n }
}

// WithLogger sets the logger used for per-callstack lifecycle diagnostics.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New constructs an empty Runner.
func New(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers cs with the runner. It must be called before Run; adding a
// callstack while Run is in progress has no effect on that run.
func (r *Runner) Add(cs *fiber.Callstack) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stacks = append(r.stacks, cs)
	return Handle(len(r.stacks) - 1)
}

// Run ticks every registered callstack at hz frames per second, one
// goroutine per callstack, until every callstack's root fiber completes or
// ctx is cancelled. It returns ctx.Err() on cancellation, nil otherwise.
func (r *Runner) Run(ctx context.Context, hz float64) error {
	period := time.Duration(float64(time.Second) / hz)

	r.mu.Lock()
	stacks := append([]*fiber.Callstack(nil), r.stacks...)
	r.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for i, cs := range stacks {
		i, cs := i, cs
		g.Go(func() error {
			return r.tickLoop(ctx, i, cs, period)
		})
	}
	return g.Wait()
}

func (r *Runner) tickLoop(ctx context.Context, handle int, cs *fiber.Callstack, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner: callstack cancelled", zap.Int("handle", handle))
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if !cs.Tick(dt) {
				r.logger.Debug("runner: callstack completed", zap.Int("handle", handle))
				return nil
			}
		}
	}
}
