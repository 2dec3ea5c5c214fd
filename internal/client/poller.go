package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const DefaultPollInterval = 30 * time.Second

// ErrStopPolling ends the loop when returned by a poll function.
var ErrStopPolling = errors.New("stop polling")

// Poller runs fn on a fixed interval until stopped or its context ends.
// Failures are logged and the next tick runs as usual. fn must not call
// Start or Stop on its own poller.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(interval time.Duration, fn func(ctx context.Context) error) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{interval: interval, fn: fn}
}

// Start begins polling, replacing any running loop.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.loop(ctx, done)
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := p.fn(ctx)
			switch {
			case errors.Is(err, ErrStopPolling):
				return
			case err != nil && ctx.Err() == nil:
				slog.Warn("poll failed, keeping last data", "error", err)
			}
		}
	}
}

// Stop cancels the loop and waits for it to exit. Safe to call when idle.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel, p.done = nil, nil
}

// Running is false once the loop exits, including after its context ends.
func (p *Poller) Running() bool {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}
