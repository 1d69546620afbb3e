// Package cli renders the interactive surface: a stdin prompter satisfying
// the service's Prompter port, and the main menu loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"order-ledger/internal/service"
	"order-ledger/internal/store"
)

// StdinPrompter reads line-oriented input and re-asks until a value parses
// and passes its validator. EOF on the input surfaces as ErrCancelled.
type StdinPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewScanner(in), out: out}
}

func (p *StdinPrompter) readLine(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", service.ErrCancelled
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *StdinPrompter) ChooseOne(title string, options []string) (int, error) {
	for {
		fmt.Fprintf(p.out, "\n--- %s ---\n", title)
		for i, op := range options {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, op)
		}
		line, err := p.readLine("Select an option")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, "Invalid option, enter the number of one of the choices.")
			continue
		}
		return n - 1, nil
	}
}

func (p *StdinPrompter) AskText(prompt string) (string, error) {
	return p.readLine(prompt)
}

func (p *StdinPrompter) AskInt(prompt string, validate func(int) error) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number, digits only.")
			continue
		}
		if validate != nil {
			if err := validate(n); err != nil {
				fmt.Fprintln(p.out, capitalize(err.Error())+".")
				continue
			}
		}
		return n, nil
	}
}

func (p *StdinPrompter) AskMoney(prompt string, validate func(decimal.Decimal) error) (decimal.Decimal, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(line, ",", "."))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid amount, use a number like 12.50.")
			continue
		}
		if validate != nil {
			if err := validate(v); err != nil {
				fmt.Fprintln(p.out, capitalize(err.Error())+".")
				continue
			}
		}
		return v, nil
	}
}

func (p *StdinPrompter) AskDate(prompt string, validate func(time.Time) error) (time.Time, error) {
	return p.askTime(prompt, store.DateLayout, "Invalid date, use DD-MM-YYYY.", validate)
}

func (p *StdinPrompter) AskDateTime(prompt string, validate func(time.Time) error) (time.Time, error) {
	return p.askTime(prompt, store.DateTimeLayout, "Invalid date/time, use DD-MM-YYYY HH:MM.", validate)
}

func (p *StdinPrompter) askTime(prompt, layout, formatHint string, validate func(time.Time) error) (time.Time, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.ParseInLocation(layout, line, time.Local)
		if err != nil {
			fmt.Fprintln(p.out, formatHint)
			continue
		}
		if validate != nil {
			if err := validate(t); err != nil {
				fmt.Fprintln(p.out, capitalize(err.Error())+".")
				continue
			}
		}
		return t, nil
	}
}

func (p *StdinPrompter) Confirm(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt + " (y/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Answer y or n.")
	}
}

func (p *StdinPrompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
