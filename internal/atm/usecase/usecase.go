package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgerror"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkglog"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkguid"
)

type Store interface {
	FindAccount(ctx context.Context, number string) (*entity.Account, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.TxEvent) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store     Store
	Events    EventPublisher
	Clock     Clock
	ID        pkguid.StringID
	Reference pkguid.NumberID
	Policy    Policy
}

type Usecase struct {
	store     Store
	events    EventPublisher
	clock     Clock
	id        pkguid.StringID
	reference pkguid.NumberID
	policy    Policy
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	reference := dep.Reference
	if reference == nil {
		reference = pkguid.NewSequence(1)
	}

	policy := dep.Policy
	if len(policy.Billers) == 0 {
		policy.Billers = entity.DefaultBillers()
	}

	return &Usecase{
		store:     dep.Store,
		events:    dep.Events,
		clock:     clock,
		id:        dep.ID,
		reference: reference,
		policy:    policy,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Lookup finds the account behind a card number.
func (u *Usecase) Lookup(ctx context.Context, number string) (*entity.Account, error) {
	if u.store == nil {
		return nil, pkgerror.NewServer(errors.New("missing dependency"))
	}

	acc, err := u.store.FindAccount(ctx, number)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return acc, nil
}

// Authenticate checks a single PIN attempt. Counting attempts is up to the caller.
func (u *Usecase) Authenticate(ctx context.Context, acc *entity.Account, pin int) error {
	if !acc.CheckPin(pin) {
		slog.WarnContext(ctx, "wrong PIN entered", "account", acc.Number())
		return pkgerror.NewBusiness("wrong PIN", pkgerror.CodeUnauthorized)
	}

	slog.InfoContext(ctx, "account authenticated", "account", acc.Number())
	return nil
}

func (u *Usecase) Withdraw(ctx context.Context, acc *entity.Account, amount entity.Money) (Receipt, error) {
	if amount.IsPositive() && !amount.IsMultipleOf(u.policy.WithdrawMultiple) {
		return Receipt{}, pkgerror.NewInvalidInput(
			fmt.Errorf("amount must be a multiple of %s", u.policy.WithdrawMultiple.Decimal().String()),
		)
	}

	// Invalid amounts and short balances share one message.
	if !acc.Withdraw(amount) {
		return Receipt{}, pkgerror.NewBusiness("insufficient funds", pkgerror.CodeInsufficientFunds)
	}

	return u.complete(ctx, acc, Receipt{Kind: entity.TxKindWithdrawal, Amount: amount}), nil
}

func (u *Usecase) Deposit(ctx context.Context, acc *entity.Account, amount entity.Money) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, pkgerror.NewInvalidInput(errors.New("invalid amount"))
	}
	if !acc.CanCredit(amount) {
		return Receipt{}, pkgerror.NewInvalidInput(errors.New("amount exceeds the account limit"))
	}

	acc.Deposit(amount)

	return u.complete(ctx, acc, Receipt{Kind: entity.TxKindDeposit, Amount: amount}), nil
}

// Balance reports the balance and records the inquiry in the mini statement.
func (u *Usecase) Balance(ctx context.Context, acc *entity.Account) (Receipt, error) {
	acc.AddTransaction("Checked balance: " + acc.Balance().Format(acc.Currency()))

	return u.complete(ctx, acc, Receipt{Kind: entity.TxKindBalance}), nil
}

func (u *Usecase) MiniStatement(ctx context.Context, acc *entity.Account) []string {
	return acc.MiniStatement()
}

func (u *Usecase) Billers() []entity.Biller {
	return slices.Clone(u.policy.Billers)
}

func (u *Usecase) PayBill(ctx context.Context, acc *entity.Account, biller entity.Biller, amount entity.Money) (Receipt, error) {
	if !u.policy.hasBiller(biller) {
		return Receipt{}, pkgerror.NewInvalidInput(errors.New("invalid bill type"))
	}

	if !acc.PayBill(string(biller), amount) {
		return Receipt{}, pkgerror.NewBusiness("payment failed, check balance or amount", pkgerror.CodeInsufficientFunds)
	}

	return u.complete(ctx, acc, Receipt{Kind: entity.TxKindBillPayment, Biller: biller, Amount: amount}), nil
}

func (u *Usecase) Transfer(ctx context.Context, acc *entity.Account, targetNumber string, amount entity.Money) (Receipt, error) {
	target, err := u.Lookup(ctx, targetNumber)
	if err != nil {
		return Receipt{}, err
	}

	if target == acc {
		return Receipt{}, pkgerror.NewInvalidInput(errors.New("cannot transfer to the same account"))
	}
	if amount.IsPositive() && !target.CanCredit(amount) {
		return Receipt{}, pkgerror.NewInvalidInput(errors.New("amount exceeds the recipient account limit"))
	}

	if !acc.TransferTo(target, amount) {
		return Receipt{}, pkgerror.NewBusiness("transfer failed, check balance or amount", pkgerror.CodeInsufficientFunds)
	}

	return u.complete(ctx, acc, Receipt{Kind: entity.TxKindTransfer, Counterparty: target.Number(), Amount: amount}), nil
}

// complete fills the receipt from the account state and publishes the audit event.
func (u *Usecase) complete(ctx context.Context, acc *entity.Account, r Receipt) Receipt {
	r.Reference = u.reference.Generate()
	r.Balance = acc.Balance()
	r.AccountNumber = acc.Number()
	r.Currency = acc.Currency()
	r.At = u.clock.Now()

	slog.InfoContext(ctx, "transaction completed",
		"reference", r.Reference,
		"kind", r.Kind,
		"account", r.AccountNumber,
		"amount", r.Amount.String(),
	)

	if u.events == nil {
		return r
	}

	event := entity.TxEvent{
		Reference:     r.Reference,
		AccountNumber: r.AccountNumber,
		Kind:          r.Kind,
		Biller:        r.Biller,
		Counterparty:  r.Counterparty,
		Amount:        r.Amount,
		Balance:       r.Balance,
		At:            r.At,
		CorrelationID: pkglog.GetCorrelationID(ctx),
	}
	if u.id != nil {
		event.EventID = u.id.Generate()
	}
	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "reference", r.Reference, "event_id", event.EventID, "error", err)
	}

	return r
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("account not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
