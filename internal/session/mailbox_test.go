package session

import (
	"sync"
	"testing"

	"github.com/shhac/snooze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox_FIFO(t *testing.T) {
	m := NewMailbox()
	assert.Nil(t, m.Drain())

	for i := uint64(1); i <= 3; i++ {
		m.Send(domain.TransportResult{Seq: i})
	}
	assert.Equal(t, 3, m.Len())

	got := m.Drain()
	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, uint64(i+1), r.Seq)
	}
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Drain())
}

func TestMailbox_ConcurrentSenders(t *testing.T) {
	m := NewMailbox()
	const senders, each = 8, 50

	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				m.Send(domain.TransportResult{Seq: uint64(s*each + i)})
			}
		}(s)
	}
	wg.Wait()

	got := m.Drain()
	require.Len(t, got, senders*each)

	// Per-sender order is preserved.
	last := make(map[int]int)
	for _, r := range got {
		s, i := int(r.Seq)/each, int(r.Seq)%each
		prev, seen := last[s]
		if seen {
			assert.Greater(t, i, prev)
		}
		last[s] = i
	}
}

func TestMailbox_ReadySignal(t *testing.T) {
	m := NewMailbox()

	select {
	case <-m.Ready():
		t.Fatal("ready before any send")
	default:
	}

	m.Send(domain.TransportResult{})
	m.Send(domain.TransportResult{})

	select {
	case <-m.Ready():
	default:
		t.Fatal("expected ready signal")
	}
	assert.Len(t, m.Drain(), 2)
}
