package ui

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// poller drives the render tick while a request is in flight. It wakes on
// every interval or when the mailbox signals a result, runs tick on the UI
// goroutine, and exits once tick reports nothing is in flight.
type poller struct {
	interval time.Duration
	ready    <-chan struct{}
	tick     func() bool
	onUI     func(func()) // fyne.DoAndWait outside tests

	running atomic.Bool
	stop    chan struct{}
	stopped atomic.Bool
}

func newPoller(interval time.Duration, ready <-chan struct{}, tick func() bool) *poller {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &poller{
		interval: interval,
		ready:    ready,
		tick:     tick,
		onUI:     fyne.DoAndWait,
		stop:     make(chan struct{}),
	}
}

// Start launches the loop unless one is already running. Must be called
// on the UI goroutine.
func (p *poller) Start() {
	if p.stopped.Load() || !p.running.CompareAndSwap(false, true) {
		return
	}
	go p.loop()
}

// Stop ends the loop for good; used when the window closes.
func (p *poller) Stop() {
	if p.stopped.CompareAndSwap(false, true) {
		close(p.stop)
	}
}

// Running reports whether a loop is active.
func (p *poller) Running() bool {
	return p.running.Load()
}

func (p *poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			p.running.Store(false)
			return
		case <-ticker.C:
		case <-p.ready:
		}

		inFlight := false
		p.onUI(func() {
			inFlight = p.tick()
			// Cleared on the UI goroutine so a Start racing with this
			// exit always sees it.
			if !inFlight {
				p.running.Store(false)
			}
		})
		if !inFlight {
			return
		}
	}
}
