package atm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/event"
	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/inbound"
	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/store"
	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/usecase"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgconfig"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Context   context.Context
	ID        pkguid.StringID
	Reference pkguid.NumberID
	In        io.Reader
	Out       io.Writer
}

// Module is one ATM terminal with its own account store.
type Module struct {
	console  *inbound.Console
	consumer *event.AuditConsumer
	store    *store.InMemoryStore
}

func New(dep Dependency) (*Module, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	cfg := dep.Config

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return nil, err
	}

	storage := store.NewInMemoryStore()
	if err := storage.Seed(ctx, accounts...); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	slog.InfoContext(ctx, "accounts loaded", "count", storage.Len())

	policy, err := loadPolicy(cfg)
	if err != nil {
		return nil, err
	}

	m := &Module{store: storage}

	var publisher usecase.EventPublisher
	if cfg.GetBool("audit.enabled") {
		bus := event.NewBus(int(cfg.GetInt("audit.buffer")))
		m.consumer = event.NewAuditConsumer(bus, event.LogAuditor{}, event.ConsumerConfig{
			Workers:      int(cfg.GetInt("audit.workers")),
			MaxRetries:   3,
			BaseBackoff:  50 * time.Millisecond,
			DedupeWindow: int(cfg.GetInt("audit.dedupe_window")),
		})
		m.consumer.Start()
		publisher = bus
	}

	uc := usecase.New(usecase.Dependency{
		Store:     storage,
		Events:    publisher,
		ID:        dep.ID,
		Reference: dep.Reference,
		Policy:    policy,
	})

	hint := ""
	if policy.WithdrawMultiple > 0 {
		hint = "Must be divisible by " + policy.WithdrawMultiple.Decimal().String()
	}

	m.console = inbound.NewConsole(uc, inbound.Config{
		BankName:             cfg.GetString("bank.name"),
		MaxPINAttempts:       int(cfg.GetInt("atm.max_pin_attempts")),
		WithdrawHint:         hint,
		AskAnother:           cfg.GetBool("atm.ask_another"),
		PrintReceipt:         cfg.GetBool("atm.receipt"),
		ConfirmAccountOnBill: cfg.GetBool("bills.confirm_account"),
	}, dep.In, dep.Out, dep.ID)

	return m, nil
}

// Run serves the console until the user leaves or a PIN lockout occurs.
func (m *Module) Run(ctx context.Context) error {
	return m.console.Run(ctx)
}

// Close drains pending audit events.
func (m *Module) Close(ctx context.Context) error {
	if m.consumer == nil {
		return nil
	}
	return m.consumer.Stop(ctx)
}

func loadAccounts(cfg pkgconfig.Config) ([]*entity.Account, error) {
	var seeds []SeedAccount
	if err := cfg.Unmarshal("accounts", &seeds); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	if len(seeds) == 0 {
		seeds = DefaultSeedAccounts()
	}

	opts := []entity.AccountOption{
		entity.WithCurrency(cfg.GetString("bank.currency")),
		entity.WithLogCapacity(int(cfg.GetInt("statement.capacity"))),
	}
	if cfg.GetBool("atm.log_timestamp") {
		opts = append(opts, entity.WithClock(time.Now))
	}

	return BuildAccounts(seeds, opts...)
}

func loadPolicy(cfg pkgconfig.Config) (usecase.Policy, error) {
	policy := usecase.Policy{}

	if raw := cfg.GetString("atm.withdraw_multiple"); raw != "" {
		multiple, err := entity.ParseMoney(raw)
		if err != nil {
			return usecase.Policy{}, fmt.Errorf("atm.withdraw_multiple: %w", err)
		}
		policy.WithdrawMultiple = multiple
	}

	for _, name := range cfg.GetArray("bills.billers") {
		if name != "" {
			policy.Billers = append(policy.Billers, entity.Biller(name))
		}
	}

	return policy, nil
}
