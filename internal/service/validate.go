package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"order-ledger/internal/store"
)

// moneyEpsilon absorbs rounding noise in paid-vs-total comparisons.
var moneyEpsilon = decimal.New(1, -2) // 0.01

// dueDateWindowDays caps how far past the order date an outstanding
// balance may stay open.
const dueDateWindowDays = 30

// deliveryGrace tolerates clock skew and typing latency when checking
// that a delivery slot is in the future.
const deliveryGrace = time.Minute

// IsPaid reports whether paid covers total within the rounding tolerance.
func IsPaid(total, paid decimal.Decimal) bool {
	return paid.GreaterThanOrEqual(total.Sub(moneyEpsilon))
}

// ValidatePaymentAmount accepts a new payment against the order's current
// total and paid amounts: positive, and never overshooting the total by
// more than the rounding tolerance.
func ValidatePaymentAmount(total, paid, payment decimal.Decimal) error {
	if payment.Sign() <= 0 {
		return errors.New("payment must be a positive amount")
	}
	if paid.Add(payment).GreaterThan(total.Add(moneyEpsilon)) {
		remaining := total.Sub(paid)
		return fmt.Errorf("payment exceeds the remaining balance, at most %s can be paid", remaining.StringFixed(2))
	}
	return nil
}

// DueDateWindow returns the allowed due-date window base and limit. The
// base is the order date's calendar day, falling back to today when the
// order date is unknown.
func DueDateWindow(orderDate, today time.Time) (base, limit time.Time) {
	base = dateOnly(orderDate)
	if orderDate.IsZero() {
		base = dateOnly(today)
	}
	return base, base.AddDate(0, 0, dueDateWindowDays)
}

// ValidateDueDate accepts an expected-payment date between today and 30
// days after the order date.
func ValidateDueDate(orderDate, d, today time.Time) error {
	_, limit := DueDateWindow(orderDate, today)
	if dateOnly(d).Before(dateOnly(today)) {
		return errors.New("expected payment date must be today or later")
	}
	if dateOnly(d).After(limit) {
		return fmt.Errorf("expected payment date cannot pass %s (30 days after the order)", limit.Format(store.DateLayout))
	}
	return nil
}

// ValidateDeliveryAt accepts a delivery slot that is not in the past,
// with a small grace window.
func ValidateDeliveryAt(t, now time.Time) error {
	if t.Before(now.Add(-deliveryGrace)) {
		return errors.New("delivery date and time cannot be in the past")
	}
	return nil
}

func ValidateQuantity(q int) error {
	if q <= 0 {
		return ErrQuantityInvalid
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
