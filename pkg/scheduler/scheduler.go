package scheduler

import (
	"context"
	"sync"
	"time"
)

// Periodic is a cancellable periodic task. It replaces recursive
// timer/animation-frame scheduling with an explicit, testable unit:
// cadence, pause, and cancellation work without a real display loop.
type Periodic struct {
	interval time.Duration
	fn       func(context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewPeriodic creates a periodic task invoking fn every interval once started
func NewPeriodic(interval time.Duration, fn func(context.Context)) *Periodic {
	return &Periodic{interval: interval, fn: fn}
}

// Start begins ticking. Starting an already-running task is a no-op.
// The task stops when Stop is called or ctx is cancelled.
func (p *Periodic) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				p.fn(runCtx)
			}
		}
	}(p.done)
}

// Stop cancels the task and waits for the tick loop to exit, so no tick
// callback runs after Stop returns. Idempotent: safe to call twice.
func (p *Periodic) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the task is currently started
func (p *Periodic) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
