package usecase

import (
	"slices"
	"time"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
)

// Receipt describes a completed transaction.
type Receipt struct {
	Reference     int64
	Kind          entity.TxKind
	Biller        entity.Biller
	Counterparty  string
	Amount        entity.Money
	Balance       entity.Money
	AccountNumber string
	Currency      string
	At            time.Time
}

// Policy holds the business rules that differ between ATM deployments.
type Policy struct {
	// WithdrawMultiple is the note size withdrawals must be a multiple of.
	// Zero disables the rule.
	WithdrawMultiple entity.Money
	Billers          []entity.Biller
}

// DefaultPolicy is multiple-of-100 withdrawals and the standard billers.
func DefaultPolicy() Policy {
	return Policy{
		WithdrawMultiple: entity.NewMoney(100),
		Billers:          entity.DefaultBillers(),
	}
}

func (p Policy) hasBiller(b entity.Biller) bool {
	return slices.Contains(p.Billers, b)
}
