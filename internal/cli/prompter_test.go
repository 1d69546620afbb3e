package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"order-ledger/internal/service"
)

func newTestPrompter(input string) (*StdinPrompter, *strings.Builder) {
	out := &strings.Builder{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestChooseOneRetriesInvalidInput(t *testing.T) {
	p, out := newTestPrompter("abc\n9\n2\n")

	idx, err := p.ChooseOne("Menu", []string{"First", "Second"})
	if err != nil {
		t.Fatalf("ChooseOne: %v", err)
	}
	if idx != 1 {
		t.Fatalf("idx = %d, want 1", idx)
	}
	if got := strings.Count(out.String(), "Invalid option"); got != 2 {
		t.Fatalf("expected 2 rejections, got %d\noutput: %s", got, out.String())
	}
}

func TestChooseOneEOFCancels(t *testing.T) {
	p, _ := newTestPrompter("")
	if _, err := p.ChooseOne("Menu", []string{"Only"}); !errors.Is(err, service.ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}

func TestAskMoneyAcceptsComma(t *testing.T) {
	p, _ := newTestPrompter("12,50\n")
	v, err := p.AskMoney("Amount", nil)
	if err != nil {
		t.Fatalf("AskMoney: %v", err)
	}
	if !v.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("v = %s, want 12.50", v)
	}
}

func TestAskMoneyRepromptsOnValidator(t *testing.T) {
	p, out := newTestPrompter("0\n10\n")
	v, err := p.AskMoney("Amount", func(v decimal.Decimal) error {
		if v.Sign() <= 0 {
			return fmt.Errorf("the amount must be positive")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("AskMoney: %v", err)
	}
	if !v.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("v = %s", v)
	}
	if !strings.Contains(out.String(), "The amount must be positive.") {
		t.Fatalf("validator message not echoed: %s", out.String())
	}
}

func TestAskDateFormatRetry(t *testing.T) {
	p, out := newTestPrompter("2026-09-15\n15-09-2026\n")
	d, err := p.AskDate("Due", nil)
	if err != nil {
		t.Fatalf("AskDate: %v", err)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Fatalf("d = %v, want %v", d, want)
	}
	if !strings.Contains(out.String(), "DD-MM-YYYY") {
		t.Fatalf("format hint missing: %s", out.String())
	}
}

func TestAskDateTimeParsesLocal(t *testing.T) {
	p, _ := newTestPrompter("02-09-2026 14:30\n")
	d, err := p.AskDateTime("Delivery", nil)
	if err != nil {
		t.Fatalf("AskDateTime: %v", err)
	}
	if !d.Equal(time.Date(2026, 9, 2, 14, 30, 0, 0, time.Local)) {
		t.Fatalf("d = %v", d)
	}
}

func TestAskIntValidator(t *testing.T) {
	p, _ := newTestPrompter("x\n-2\n3\n")
	n, err := p.AskInt("Quantity", func(n int) error {
		if n <= 0 {
			return fmt.Errorf("quantity must be positive")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("AskInt: %v", err)
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
}

func TestConfirm(t *testing.T) {
	p, out := newTestPrompter("maybe\nY\n")
	ok, err := p.Confirm("Add another item?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !ok {
		t.Fatal("expected yes")
	}
	if !strings.Contains(out.String(), "Answer y or n.") {
		t.Fatalf("retry hint missing: %s", out.String())
	}

	p, _ = newTestPrompter("no\n")
	ok, err = p.Confirm("Add another item?")
	if err != nil || ok {
		t.Fatalf("Confirm(no) = %v, %v", ok, err)
	}
}
