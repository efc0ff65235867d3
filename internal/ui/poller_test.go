package ui

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// serialUI runs callbacks one at a time, standing in for the UI goroutine.
type serialUI struct{ mu sync.Mutex }

func (s *serialUI) do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func TestPoller_RunsUntilIdle(t *testing.T) {
	var ticks atomic.Int32
	ui := &serialUI{}
	p := newPoller(time.Millisecond, nil, func() bool {
		return ticks.Add(1) < 3
	})
	p.onUI = ui.do

	ui.do(p.Start)

	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, time.Millisecond)
	assert.Equal(t, int32(3), ticks.Load())
}

func TestPoller_ReadyWakesEarly(t *testing.T) {
	ready := make(chan struct{}, 1)
	ticked := make(chan struct{}, 1)
	p := newPoller(time.Hour, ready, func() bool {
		ticked <- struct{}{}
		return false
	})
	p.onUI = (&serialUI{}).do

	p.Start()
	ready <- struct{}{}

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("ready signal did not wake the poller")
	}
}

func TestPoller_SingleLoop(t *testing.T) {
	var ticks atomic.Int32
	release := make(chan struct{})
	ui := &serialUI{}
	p := newPoller(time.Millisecond, nil, func() bool {
		ticks.Add(1)
		select {
		case <-release:
			return false
		default:
			return true
		}
	})
	p.onUI = ui.do

	ui.do(p.Start)
	ui.do(p.Start)
	ui.do(p.Start)
	assert.True(t, p.Running())

	close(release)
	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, time.Millisecond)

	// A fresh Start after going idle begins a new loop.
	before := ticks.Load()
	ui.do(p.Start)
	assert.Eventually(t, func() bool { return ticks.Load() > before }, time.Second, time.Millisecond)
}

func TestPoller_Stop(t *testing.T) {
	p := newPoller(time.Hour, nil, func() bool { return true })
	p.onUI = (&serialUI{}).do

	p.Start()
	p.Stop()
	p.Stop()

	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, time.Millisecond)
	p.Start()
	assert.False(t, p.Running(), "stopped pollers do not restart")
}
