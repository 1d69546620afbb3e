package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidatePaymentAmount(t *testing.T) {
	total, paid := d("100.00"), d("60.00")

	if err := ValidatePaymentAmount(total, paid, d("40.00")); err != nil {
		t.Fatalf("exact remainder rejected: %v", err)
	}
	if err := ValidatePaymentAmount(total, paid, d("0")); err == nil {
		t.Fatal("zero payment accepted")
	}
	if err := ValidatePaymentAmount(total, paid, d("-5")); err == nil {
		t.Fatal("negative payment accepted")
	}
	// Scenario: 150 against a remaining balance of 40.
	if err := ValidatePaymentAmount(total, paid, d("150.00")); err == nil {
		t.Fatal("overpayment accepted")
	}
	// Rounding tolerance: a cent of overshoot passes.
	if err := ValidatePaymentAmount(total, paid, d("40.01")); err != nil {
		t.Fatalf("payment within tolerance rejected: %v", err)
	}
	if err := ValidatePaymentAmount(total, paid, d("40.02")); err == nil {
		t.Fatal("payment past tolerance accepted")
	}
}

func TestIsPaid(t *testing.T) {
	if !IsPaid(d("100.00"), d("100.00")) {
		t.Fatal("exact payment not recognized as paid")
	}
	if !IsPaid(d("100.00"), d("99.99")) {
		t.Fatal("payment within epsilon not recognized as paid")
	}
	if IsPaid(d("100.00"), d("99.98")) {
		t.Fatal("underpayment recognized as paid")
	}
}

func TestValidateDueDate(t *testing.T) {
	orderDate := time.Date(2026, 8, 31, 10, 15, 0, 0, time.Local)
	today := time.Date(2026, 8, 31, 18, 0, 0, 0, time.Local)

	if err := ValidateDueDate(orderDate, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), today); err != nil {
		t.Fatalf("today rejected: %v", err)
	}
	if err := ValidateDueDate(orderDate, time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local), today); err != nil {
		t.Fatalf("limit day rejected: %v", err)
	}
	if err := ValidateDueDate(orderDate, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), today); err == nil {
		t.Fatal("date past the 30-day window accepted")
	}
	if err := ValidateDueDate(orderDate, time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local), today); err == nil {
		t.Fatal("past date accepted")
	}
}

func TestDueDateWindowFallsBackToToday(t *testing.T) {
	today := time.Date(2026, 8, 31, 18, 0, 0, 0, time.Local)
	base, limit := DueDateWindow(time.Time{}, today)
	if !base.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("base = %v", base)
	}
	if !limit.Equal(time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("limit = %v", limit)
	}
}

func TestValidateDeliveryAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	if err := ValidateDeliveryAt(now.Add(2*time.Hour), now); err != nil {
		t.Fatalf("future delivery rejected: %v", err)
	}
	// Inside the grace window for slow typing.
	if err := ValidateDeliveryAt(now.Add(-30*time.Second), now); err != nil {
		t.Fatalf("delivery within grace rejected: %v", err)
	}
	if err := ValidateDeliveryAt(now.Add(-2*time.Minute), now); err == nil {
		t.Fatal("past delivery accepted")
	}
}

func TestValidateQuantity(t *testing.T) {
	if err := ValidateQuantity(1); err != nil {
		t.Fatalf("positive quantity rejected: %v", err)
	}
	if err := ValidateQuantity(0); err == nil {
		t.Fatal("zero quantity accepted")
	}
	if err := ValidateQuantity(-3); err == nil {
		t.Fatal("negative quantity accepted")
	}
}
