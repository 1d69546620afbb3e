package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"order-ledger/internal/models"
	"order-ledger/internal/store"
)

// registerPayment applies one payment event to the staged order: prompts
// for an amount within the remaining balance, bumps the paid amount and
// payment date, and settles the status. When the order ends up Partial the
// caller still owes a due-date capture.
func (s *orderService) registerPayment(o *models.Order) error {
	remaining := o.TotalAmount.Sub(o.PaidAmount)
	if remaining.Sign() <= 0 {
		s.prompter.Printf("Nothing left to pay, the order is already settled.\n")
		return nil
	}

	s.prompter.Printf("Order total: %s\nPaid so far: %s\nRemaining:   %s\n",
		o.TotalAmount.StringFixed(2), o.PaidAmount.StringFixed(2), remaining.StringFixed(2))

	amount, err := s.prompter.AskMoney("New payment amount", func(v decimal.Decimal) error {
		return ValidatePaymentAmount(o.TotalAmount, o.PaidAmount, v)
	})
	if err != nil {
		return err
	}

	now := s.now()
	o.PaidAmount = o.PaidAmount.Add(amount)
	o.PaymentDate = &now

	if IsPaid(o.TotalAmount, o.PaidAmount) {
		o.PaymentStatus = models.PaymentStatusPaid
		o.PaymentDueDate = nil
		s.prompter.Printf("Payment complete, status is now Paid.\n")
	} else {
		o.PaymentStatus = models.PaymentStatusPartial
		s.prompter.Printf("Registered %s, paid %s of %s.\n",
			amount.StringFixed(2), o.PaidAmount.StringFixed(2), o.TotalAmount.StringFixed(2))
	}
	return nil
}

// captureDueDate asks for the expected payment date of the outstanding
// balance, bounded by [today, order date + 30 days].
func (s *orderService) captureDueDate(o *models.Order) error {
	today := s.now()
	_, limit := DueDateWindow(o.OrderDate, today)
	prompt := fmt.Sprintf("Expected payment date (%s at the latest)", limit.Format(store.DateLayout))
	d, err := s.prompter.AskDate(prompt, func(d time.Time) error {
		return ValidateDueDate(o.OrderDate, d, today)
	})
	if err != nil {
		return err
	}
	d = dateOnly(d)
	o.PaymentDueDate = &d
	return nil
}
