package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPollerFetchesImmediately(t *testing.T) {
	counts := make(chan int, 1)
	p := NewPoller(func(ctx context.Context) (int, error) {
		return 4, nil
	}, 10*time.Second, func(n int) { counts <- n })

	p.Start()
	defer p.Stop()

	select {
	case n := <-counts:
		if n != 4 {
			t.Fatalf("count = %d, want 4", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("first poll never happened")
	}
	if p.Last() != 4 {
		t.Fatalf("Last = %d, want 4", p.Last())
	}
}

func TestPollerKeepsLastOnError(t *testing.T) {
	calls := make(chan struct{}, 1)
	p := NewPoller(func(ctx context.Context) (int, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return 0, errors.New("network down")
	}, 10*time.Second, nil)

	p.Start()
	defer p.Stop()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("poll never ran")
	}
	if p.Last() != 0 {
		t.Fatalf("Last = %d, want untouched 0", p.Last())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 0, nil }, 10*time.Second, nil)
	p.Start()
	p.Stop()
	p.Stop()
}

func TestPollerClampsInterval(t *testing.T) {
	p := NewPoller(func(ctx context.Context) (int, error) { return 0, nil }, time.Millisecond, nil)
	if p.interval != MinInterval {
		t.Fatalf("interval = %v, want clamped to %v", p.interval, MinInterval)
	}
	p = NewPoller(func(ctx context.Context) (int, error) { return 0, nil }, time.Hour, nil)
	if p.interval != MaxInterval {
		t.Fatalf("interval = %v, want clamped to %v", p.interval, MaxInterval)
	}
}
