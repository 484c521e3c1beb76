package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 100; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, want within (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingLoader struct {
	mu    sync.Mutex
	calls int
	err   error
	done  chan struct{}
	want  int
}

func (l *countingLoader) LoadAll(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.calls == l.want {
		close(l.done)
	}
	return l.err
}

func (l *countingLoader) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func TestStartRefresher_ReloadsPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := &countingLoader{done: make(chan struct{}), want: 3}
	StartRefresher(ctx, l, time.Millisecond, nil)

	select {
	case <-l.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresher made %d loads, want at least 3", l.count())
	}
}

func TestStartRefresher_DisabledWithZeroInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := &countingLoader{done: make(chan struct{}), want: 1}
	StartRefresher(ctx, l, 0, nil)

	time.Sleep(20 * time.Millisecond)
	if got := l.count(); got != 0 {
		t.Fatalf("LoadAll called %d times, want 0", got)
	}
}

func TestStartRefresher_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	l := &countingLoader{done: make(chan struct{}), want: 1, err: errors.New("offline")}
	StartRefresher(ctx, l, time.Millisecond, nil)

	select {
	case <-l.done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher never loaded")
	}
	cancel()

	// After a failure the next attempt is at least 2ms away; give the
	// goroutine time to observe the cancellation, then make sure it stays quiet.
	time.Sleep(20 * time.Millisecond)
	settled := l.count()
	time.Sleep(50 * time.Millisecond)
	if got := l.count(); got != settled {
		t.Fatalf("LoadAll called %d times after cancel, want %d", got, settled)
	}
}

// blockingLoader holds every load until its context ends.
type blockingLoader struct {
	started  chan struct{}
	mu       sync.Mutex
	returned bool
}

func (l *blockingLoader) LoadAll(ctx context.Context) error {
	close(l.started)
	<-ctx.Done()
	time.Sleep(10 * time.Millisecond)
	l.mu.Lock()
	l.returned = true
	l.mu.Unlock()
	return ctx.Err()
}

func TestStartRefresher_StopWaitsForInFlightLoad(t *testing.T) {
	l := &blockingLoader{started: make(chan struct{})}
	stop := StartRefresher(context.Background(), l, time.Millisecond, nil)

	select {
	case <-l.started:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher never loaded")
	}

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.returned {
		t.Fatal("stop returned before the in-flight load finished")
	}
	stop() // second call is a no-op
}

func TestStartRefresher_StopWithZeroInterval(t *testing.T) {
	stop := StartRefresher(context.Background(), &countingLoader{}, 0, nil)
	stop()
}
