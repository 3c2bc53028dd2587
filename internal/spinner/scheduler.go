package spinner

import (
	"sync"
	"time"
)

// Task is a periodic job armed by a Scheduler.
type Task interface {
	// Cancel stops the task. It is safe to call more than once.
	Cancel()
}

// Scheduler runs a function at a fixed interval until the task is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler runs tasks on a time.Ticker in their own goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.loop(fn)
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) loop(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			fn()
		}
	}
}

// Cancel does not wait for a tick that is already running.
func (t *tickerTask) Cancel() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
