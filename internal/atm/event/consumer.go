package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkglog"
)

type Handler interface {
	Handle(ctx context.Context, event entity.TxEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration

	// DedupeWindow bounds how many event ids are kept for duplicate checks.
	DedupeWindow int
}

// AuditConsumer drains the bus and hands every event to a Handler, retrying
// failures with exponential backoff. Events whose id is among the most recent
// DedupeWindow ids are skipped.
type AuditConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        *recentIDs
	wg          sync.WaitGroup
}

func NewAuditConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *AuditConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &AuditConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		seen:        newRecentIDs(cfg.DedupeWindow),
	}
}

func (c *AuditConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for queued events to drain or ctx to end.
func (c *AuditConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *AuditConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *AuditConsumer) processEvent(event entity.TxEvent) {
	if c.handler == nil {
		return
	}

	ctx := context.Background()
	if event.CorrelationID != "" {
		ctx = pkglog.SetCorrelationID(ctx, event.CorrelationID)
	}

	if event.EventID != "" {
		if c.seen.markSeen(event.EventID) {
			slog.InfoContext(ctx, "skip duplicate transaction event", "event_id", event.EventID, "reference", event.Reference)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(ctx, event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.ErrorContext(ctx, "failed to audit transaction after retries", "event_id", event.EventID, "reference", event.Reference, "error", err)
			return
		}

		if !sleepBackoff(backoff) {
			return
		}
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
	return true
}

// LogAuditor writes every event to the structured log as the audit trail.
type LogAuditor struct {
	Logger *slog.Logger
}

func (a LogAuditor) Handle(ctx context.Context, event entity.TxEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "audit",
		"event_id", event.EventID,
		"reference", event.Reference,
		"account", event.AccountNumber,
		"kind", string(event.Kind),
		"biller", string(event.Biller),
		"counterparty", event.Counterparty,
		"amount", event.Amount.String(),
		"balance", event.Balance.String(),
		"at", event.At,
	)
	return nil
}
