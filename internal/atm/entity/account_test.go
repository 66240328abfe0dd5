package entity

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestAccountWithdrawExample(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1001", 1111, MustParseMoney("500.00"))

	if !acc.Withdraw(NewMoney(100)) {
		t.Fatalf("Withdraw(100) = false, want true")
	}
	if acc.Balance() != MustParseMoney("400.00") {
		t.Fatalf("balance = %s, want 400.00", acc.Balance())
	}

	if acc.Withdraw(NewMoney(1000)) {
		t.Fatalf("Withdraw(1000) = true, want false")
	}
	if acc.Balance() != MustParseMoney("400.00") {
		t.Fatalf("balance = %s, want 400.00", acc.Balance())
	}
}

func TestAccountWithdrawRejectsNonPositive(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1001", 1111, NewMoney(500))
	for _, amount := range []Money{0, -1, NewMoney(-100)} {
		if acc.Withdraw(amount) {
			t.Fatalf("Withdraw(%s) = true, want false", amount)
		}
	}
	if acc.Balance() != NewMoney(500) {
		t.Fatalf("balance = %s, want 500.00", acc.Balance())
	}
	if len(acc.MiniStatement()) != 0 {
		t.Fatalf("failed withdrawals must not be logged: %v", acc.MiniStatement())
	}
}

func TestAccountCheckPin(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1001", 1111, 0)
	if !acc.CheckPin(1111) {
		t.Fatalf("CheckPin(1111) = false")
	}
	if acc.CheckPin(1112) {
		t.Fatalf("CheckPin(1112) = true")
	}
}

func TestAccountDepositIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1002", 2222, NewMoney(1000))
	acc.Deposit(0)
	acc.Deposit(-500)
	if acc.Balance() != NewMoney(1000) || len(acc.MiniStatement()) != 0 {
		t.Fatalf("non-positive deposits changed state: %s %v", acc.Balance(), acc.MiniStatement())
	}

	acc.Deposit(MustParseMoney("250.50"))
	if acc.Balance() != MustParseMoney("1250.50") {
		t.Fatalf("balance = %s, want 1250.50", acc.Balance())
	}
	want := []string{"Deposit: +PHP250.50"}
	if got := acc.MiniStatement(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MiniStatement() = %v, want %v", got, want)
	}
}

func TestAccountLogEntries(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1001", 1111, NewMoney(500), WithCurrency("USD"))
	acc.Withdraw(NewMoney(100))
	acc.PayBill("Water", MustParseMoney("45.25"))
	acc.Deposit(NewMoney(10))

	want := []string{
		"Withdrawal: -USD100.00",
		"Paid Water: -USD45.25",
		"Deposit: +USD10.00",
	}
	if got := acc.MiniStatement(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MiniStatement() = %v, want %v", got, want)
	}
}

func TestAccountPayBillInsufficient(t *testing.T) {
	t.Parallel()

	acc := NewAccount("1234", 3333, NewMoney(100))
	if acc.PayBill("Electricity", NewMoney(101)) {
		t.Fatalf("PayBill over balance = true")
	}
	if acc.PayBill("Electricity", 0) {
		t.Fatalf("PayBill zero = true")
	}
	if acc.Balance() != NewMoney(100) {
		t.Fatalf("balance = %s, want 100.00", acc.Balance())
	}
}

func TestAccountTransferTo(t *testing.T) {
	t.Parallel()

	src := NewAccount("1001", 1111, NewMoney(500))
	dst := NewAccount("1002", 2222, NewMoney(1000))

	if !src.TransferTo(dst, NewMoney(200)) {
		t.Fatalf("TransferTo = false, want true")
	}
	if src.Balance() != NewMoney(300) || dst.Balance() != NewMoney(1200) {
		t.Fatalf("balances = %s/%s, want 300.00/1200.00", src.Balance(), dst.Balance())
	}

	if got := src.MiniStatement(); !reflect.DeepEqual(got, []string{"Transfer to 1002: -PHP200.00"}) {
		t.Fatalf("source log = %v", got)
	}
	wantDst := []string{"Deposit: +PHP200.00", "Transfer from 1001: +PHP200.00"}
	if got := dst.MiniStatement(); !reflect.DeepEqual(got, wantDst) {
		t.Fatalf("target log = %v, want %v", got, wantDst)
	}
}

func TestAccountTransferToFailures(t *testing.T) {
	t.Parallel()

	src := NewAccount("1001", 1111, NewMoney(500))
	dst := NewAccount("1002", 2222, NewMoney(1000))

	cases := []struct {
		name   string
		target *Account
		amount Money
	}{
		{"nil target", nil, NewMoney(100)},
		{"self", src, NewMoney(100)},
		{"zero", dst, 0},
		{"negative", dst, NewMoney(-5)},
		{"insufficient", dst, NewMoney(501)},
	}
	for _, tc := range cases {
		if src.TransferTo(tc.target, tc.amount) {
			t.Fatalf("%s: TransferTo = true, want false", tc.name)
		}
	}

	if src.Balance() != NewMoney(500) || dst.Balance() != NewMoney(1000) {
		t.Fatalf("balances changed: %s/%s", src.Balance(), dst.Balance())
	}
	if len(src.MiniStatement()) != 0 || len(dst.MiniStatement()) != 0 {
		t.Fatalf("failed transfers must not be logged")
	}
}

func TestAccountTimestampedEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	acc := NewAccount("1001", 1111, NewMoney(500), WithClock(func() time.Time { return now }))
	acc.Deposit(NewMoney(1))

	if got := acc.MiniStatement()[0]; got != "Deposit: +PHP1.00 (2026-10-15 09:30:00)" {
		t.Fatalf("entry = %q", got)
	}
}

func TestAccountNegativeOpeningBalanceClamped(t *testing.T) {
	t.Parallel()

	if got := NewAccount("9", 0, NewMoney(-10)).Balance(); got != 0 {
		t.Fatalf("balance = %s, want 0.00", got)
	}
}

func TestAccountBalanceNeverNegativeUnderRandomOperations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	a := NewAccount("1001", 1111, NewMoney(500), WithLogCapacity(5))
	b := NewAccount("1002", 2222, NewMoney(1000), WithLogCapacity(5))

	for i := 0; i < 2000; i++ {
		amount := Money(rng.Int63n(120000) - 20000)
		if rng.Intn(10) == 0 {
			amount = MaxMoney - Money(rng.Int63n(200000))
		}
		before := a.Balance() + b.Balance()

		switch rng.Intn(5) {
		case 0:
			a.Deposit(amount)
		case 1:
			a.Withdraw(amount)
		case 2:
			a.PayBill("WiFi", amount)
		case 3:
			if ok := a.TransferTo(b, amount); ok && a.Balance()+b.Balance() != before {
				t.Fatalf("transfer changed total: %s -> %s", before, a.Balance()+b.Balance())
			}
		case 4:
			if ok := b.TransferTo(a, amount); !ok && a.Balance()+b.Balance() != before {
				t.Fatalf("failed transfer changed total")
			}
		}

		if a.Balance() < 0 || b.Balance() < 0 {
			t.Fatalf("negative balance after step %d: %s/%s", i, a.Balance(), b.Balance())
		}
		if len(a.MiniStatement()) > 5 || len(b.MiniStatement()) > 5 {
			t.Fatalf("log exceeded capacity after step %d", i)
		}
	}

	for _, entry := range a.MiniStatement() {
		if !strings.Contains(entry, "PHP") {
			t.Fatalf("entry without currency: %q", entry)
		}
	}
}

func TestAccountDepositRejectsOverflow(t *testing.T) {
	t.Parallel()

	a := NewAccount("1001", 1111, MustParseMoney("500.00"))
	a.Deposit(MustParseMoney("92233720368547758.07"))

	if got := a.Balance(); got != NewMoney(500) {
		t.Fatalf("balance = %s, want 500.00", got)
	}
	if got := a.MiniStatement(); len(got) != 0 {
		t.Fatalf("statement = %v, want empty", got)
	}
	if a.CanCredit(MaxMoney - NewMoney(499)) {
		t.Fatalf("CanCredit past MaxMoney = true")
	}
	if !a.CanCredit(MaxMoney - NewMoney(500)) {
		t.Fatalf("CanCredit up to MaxMoney = false")
	}
}

func TestAccountTransferRejectsTargetOverflow(t *testing.T) {
	t.Parallel()

	a := NewAccount("1001", 1111, NewMoney(500))
	b := NewAccount("1002", 2222, MaxMoney-NewMoney(100))

	if a.TransferTo(b, NewMoney(200)) {
		t.Fatalf("transfer past target limit succeeded")
	}
	if a.Balance() != NewMoney(500) || b.Balance() != MaxMoney-NewMoney(100) {
		t.Fatalf("balances changed: %s / %s", a.Balance(), b.Balance())
	}
	if len(a.MiniStatement()) != 0 || len(b.MiniStatement()) != 0 {
		t.Fatalf("failed transfer must not log")
	}

	if !a.TransferTo(b, NewMoney(100)) {
		t.Fatalf("transfer up to the limit failed")
	}
	if b.Balance() != MaxMoney {
		t.Fatalf("target balance = %s, want MaxMoney", b.Balance())
	}
}
