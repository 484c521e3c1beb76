package app

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const maxBackoff = 30 * time.Second

// loader is the part of state.Session the refresher drives.
type loader interface {
	LoadAll(ctx context.Context) error
}

// StartRefresher launches a background goroutine that reloads the catalog
// every interval, backing off while loads fail. It does nothing when interval
// is not positive. The returned stop function cancels the refresher and waits
// for an in-flight load to return.
func StartRefresher(ctx context.Context, session loader, interval time.Duration, log *slog.Logger) (stop func()) {
	if interval <= 0 {
		return func() {}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := session.LoadAll(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				log.Warn("background refresh failed", "error", err, "consecutive_failures", failures)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// calculateBackoff doubles base for every consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	d := base << failures
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}
