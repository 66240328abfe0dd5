package event

import (
	"context"
	"errors"
	"sync"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
)

// ErrBusClosed is returned by Publish once the audit consumer has stopped.
var ErrBusClosed = errors.New("event bus is closed")

// Bus queues completed-transaction events from the usecase for the audit
// consumer. The buffer decouples the console session from audit logging.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan entity.TxEvent
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan entity.TxEvent, buffer),
	}
}

// Publish queues event, blocking while the buffer is full until ctx ends.
// The usecase treats any error as non-fatal and keeps the transaction.
func (b *Bus) Publish(ctx context.Context, event entity.TxEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns the channel audit workers drain; it is closed by Close.
func (b *Bus) Subscribe() <-chan entity.TxEvent {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
