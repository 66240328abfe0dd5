package entity

import (
	"fmt"
	"time"
)

// DefaultCurrency prefixes amounts in log entries and receipts.
const DefaultCurrency = "PHP"

const stampLayout = "2006-01-02 15:04:05"

// Account is a single bank account. It owns its balance, PIN and a bounded
// transaction log. The balance never goes below zero; every mutation goes
// through the methods below.
type Account struct {
	number   string
	pin      int
	balance  Money
	currency string
	log      *TxLog
	now      func() time.Time
}

// AccountOption customizes an Account at construction.
type AccountOption func(*Account)

// WithCurrency sets the currency code used in log entries.
func WithCurrency(code string) AccountOption {
	return func(a *Account) {
		if code != "" {
			a.currency = code
		}
	}
}

// WithLogCapacity sets how many entries the mini statement keeps.
func WithLogCapacity(n int) AccountOption {
	return func(a *Account) {
		a.log = NewTxLog(n)
	}
}

// WithClock makes every log entry carry a timestamp taken from now.
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		a.now = now
	}
}

// NewAccount creates an account. A negative opening balance is clamped to zero.
func NewAccount(number string, pin int, balance Money, opts ...AccountOption) *Account {
	if balance < 0 {
		balance = 0
	}

	a := &Account{
		number:   number,
		pin:      pin,
		balance:  balance,
		currency: DefaultCurrency,
		log:      NewTxLog(DefaultLogCapacity),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// CheckPin reports whether input matches the stored PIN.
func (a *Account) CheckPin(input int) bool {
	return a.pin == input
}

func (a *Account) Number() string { return a.number }

func (a *Account) Balance() Money { return a.balance }

func (a *Account) Currency() string { return a.currency }

// Deposit adds amount to the balance. Non-positive amounts and amounts the
// balance cannot hold are ignored.
func (a *Account) Deposit(amount Money) {
	if !a.CanCredit(amount) {
		return
	}

	a.balance += amount
	a.AddTransaction(fmt.Sprintf("Deposit: +%s", amount.Format(a.currency)))
}

// Withdraw takes amount from the balance. It returns false, leaving the
// account untouched, when amount is not positive or exceeds the balance.
func (a *Account) Withdraw(amount Money) bool {
	if !a.canDebit(amount) {
		return false
	}

	a.balance -= amount
	a.AddTransaction(fmt.Sprintf("Withdrawal: -%s", amount.Format(a.currency)))
	return true
}

// PayBill debits amount for the named biller under the same rules as Withdraw.
func (a *Account) PayBill(biller string, amount Money) bool {
	if !a.canDebit(amount) {
		return false
	}

	a.balance -= amount
	a.AddTransaction(fmt.Sprintf("Paid %s: -%s", biller, amount.Format(a.currency)))
	return true
}

// TransferTo moves amount to target. The target is credited through Deposit
// and then gets an explicit incoming entry, so it logs the transfer twice.
func (a *Account) TransferTo(target *Account, amount Money) bool {
	if target == nil || target == a || !a.canDebit(amount) || !target.CanCredit(amount) {
		return false
	}

	a.balance -= amount
	a.AddTransaction(fmt.Sprintf("Transfer to %s: -%s", target.number, amount.Format(a.currency)))

	target.Deposit(amount)
	target.AddTransaction(fmt.Sprintf("Transfer from %s: +%s", a.number, amount.Format(target.currency)))
	return true
}

// AddTransaction appends a description to the bounded log.
func (a *Account) AddTransaction(description string) {
	if a.now != nil {
		description = fmt.Sprintf("%s (%s)", description, a.now().Format(stampLayout))
	}
	a.log.Add(description)
}

// MiniStatement returns a copy of the recent transactions, oldest first.
func (a *Account) MiniStatement() []string {
	return a.log.Entries()
}

// CanCredit reports whether amount is positive and fits on top of the balance.
func (a *Account) CanCredit(amount Money) bool {
	return amount.IsPositive() && a.balance.CanAdd(amount)
}

func (a *Account) canDebit(amount Money) bool {
	return amount.IsPositive() && amount <= a.balance
}
