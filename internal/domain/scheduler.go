package domain

import (
	"sync"
	"time"
)

// Scheduler arms a periodic callback.
type Scheduler interface {
	// Every calls fn once per period until stop is called. stop must not
	// block, and a call to fn already in flight may still complete.
	Every(period time.Duration, fn func()) (stop func())
}

// TickerScheduler runs callbacks on a time.Ticker goroutine.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(period time.Duration, fn func()) func() {
	ticker := time.NewTicker(period)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return sync.OnceFunc(func() {
		ticker.Stop()
		close(done)
	})
}
