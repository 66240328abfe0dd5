package entity

import (
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	cases := map[string]Money{
		"500":       50000,
		"500.5":     50050,
		"500.50":    50050,
		"0.01":      1,
		"1,000.25":  100025,
		" 100 ":     10000,
		"-100":      -10000,
		"100.500":   10050,
		"0":         0,
		"999999.99": 99999999,
	}
	for in, want := range cases {
		got, err := ParseMoney(in)
		if err != nil {
			t.Fatalf("ParseMoney(%q) err = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMoney(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseMoneyErrors(t *testing.T) {
	t.Parallel()

	if _, err := ParseMoney("abc"); !errors.Is(err, ErrAmountFormat) {
		t.Fatalf("ParseMoney(abc) err = %v, want ErrAmountFormat", err)
	}
	if _, err := ParseMoney(""); !errors.Is(err, ErrAmountFormat) {
		t.Fatalf("ParseMoney(empty) err = %v, want ErrAmountFormat", err)
	}
	if _, err := ParseMoney("10.005"); !errors.Is(err, ErrAmountPrecision) {
		t.Fatalf("ParseMoney(10.005) err = %v, want ErrAmountPrecision", err)
	}
	for _, in := range []string{"184467440737095517.16", "92233720368547758.08", "-92233720368547758.09", "1e30"} {
		if got, err := ParseMoney(in); !errors.Is(err, ErrAmountRange) {
			t.Fatalf("ParseMoney(%s) = %s, %v, want ErrAmountRange", in, got, err)
		}
	}
}

func TestParseMoneyUpperBound(t *testing.T) {
	t.Parallel()

	got, err := ParseMoney("92233720368547758.07")
	if err != nil {
		t.Fatalf("ParseMoney(max) err = %v", err)
	}
	if got != MaxMoney {
		t.Fatalf("ParseMoney(max) = %d, want %d", got, MaxMoney)
	}
}

func TestMoneyCanAdd(t *testing.T) {
	t.Parallel()

	if !NewMoney(500).CanAdd(MaxMoney - NewMoney(500)) {
		t.Fatalf("expected sum up to MaxMoney to fit")
	}
	if NewMoney(500).CanAdd(MaxMoney - NewMoney(499)) {
		t.Fatalf("expected sum past MaxMoney to be rejected")
	}
}

func TestMoneyFormatting(t *testing.T) {
	t.Parallel()

	if got := NewMoney(500).Format("PHP"); got != "PHP500.00" {
		t.Fatalf("Format = %q, want PHP500.00", got)
	}
	if got := Money(5).String(); got != "0.05" {
		t.Fatalf("String = %q, want 0.05", got)
	}
	if got := Money(123456).String(); got != "1234.56" {
		t.Fatalf("String = %q, want 1234.56", got)
	}
}

func TestMoneyIsMultipleOf(t *testing.T) {
	t.Parallel()

	step := NewMoney(100)
	if !NewMoney(300).IsMultipleOf(step) {
		t.Fatalf("300 should be a multiple of 100")
	}
	if NewMoney(150).IsMultipleOf(step) {
		t.Fatalf("150 should not be a multiple of 100")
	}
	if MustParseMoney("100.50").IsMultipleOf(step) {
		t.Fatalf("100.50 should not be a multiple of 100")
	}
	if !MustParseMoney("12.34").IsMultipleOf(0) {
		t.Fatalf("zero step should allow any amount")
	}
}
