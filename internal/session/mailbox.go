package session

import (
	"sync"

	"github.com/shhac/snooze/internal/domain"
)

// Mailbox is an unbounded FIFO of transport results. Any goroutine may Send;
// a single reader drains it without blocking.
type Mailbox struct {
	mu    sync.Mutex
	items []domain.TransportResult
	ready chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Send enqueues a result. It never blocks.
func (m *Mailbox) Send(result domain.TransportResult) {
	m.mu.Lock()
	m.items = append(m.items, result)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Drain removes and returns everything queued, oldest first. Returns nil
// when the mailbox is empty.
func (m *Mailbox) Drain() []domain.TransportResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.items
	m.items = nil
	return items
}

// Len returns the number of queued results.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Ready is signalled after a Send. A single signal may cover several
// results; always Drain rather than counting signals.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}
