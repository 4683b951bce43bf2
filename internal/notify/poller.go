// Package notify polls the unread-message count on a fixed interval. Each
// poll independently overwrites the last snapshot (last write wins); a slow
// response racing the next tick is harmless because the server's answer is
// idempotent. The poller is cancellable and must be stopped when its
// consumer goes away.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/confideapp/confide/internal/logger"
)

// Interval bounds. Configured values are clamped into this range.
const (
	MinInterval = 5 * time.Second
	MaxInterval = 30 * time.Second
)

// CountFunc fetches the current unread count. *api.Client.UnreadCount
// satisfies it.
type CountFunc func(ctx context.Context) (int, error)

// Poller periodically fetches the unread count and hands every fresh
// snapshot to the callback.
type Poller struct {
	fetch    CountFunc
	interval time.Duration
	onCount  func(int)

	mu      sync.Mutex
	last    int
	stopCh  chan struct{}
	stopped bool
}

// NewPoller creates a poller. onCount may be nil; Last() always works.
func NewPoller(fetch CountFunc, interval time.Duration, onCount func(int)) *Poller {
	if interval < MinInterval {
		interval = MinInterval
	}
	if interval > MaxInterval {
		interval = MaxInterval
	}
	return &Poller{
		fetch:    fetch,
		interval: interval,
		onCount:  onCount,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the poll loop. The first fetch happens immediately.
func (p *Poller) Start() {
	go p.loop()
}

func (p *Poller) loop() {
	p.poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.stopCh:
			return
		}
	}
}

func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	count, err := p.fetch(ctx)
	if err != nil {
		// Polling failures are silent; the next tick retries naturally.
		logger.Debug("unread poll failed", logger.F("error", err))
		return
	}

	p.mu.Lock()
	p.last = count
	onCount := p.onCount
	p.mu.Unlock()

	if onCount != nil {
		onCount(count)
	}
}

// Last returns the most recent snapshot.
func (p *Poller) Last() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Stop halts the loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.stopCh)
}
