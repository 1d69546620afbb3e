package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prompter is the interaction surface the ledger drives. Implementations
// own rendering and re-asking: each Ask* keeps prompting until the input
// parses and the validate func (when given) accepts it, restating the
// violated bound on every rejection. Invalid input never comes back to the
// caller silently coerced.
type Prompter interface {
	// ChooseOne renders the options under the title and returns the index
	// of the selected one.
	ChooseOne(title string, options []string) (int, error)
	AskText(prompt string) (string, error)
	AskInt(prompt string, validate func(int) error) (int, error)
	AskMoney(prompt string, validate func(decimal.Decimal) error) (decimal.Decimal, error)
	AskDate(prompt string, validate func(time.Time) error) (time.Time, error)
	AskDateTime(prompt string, validate func(time.Time) error) (time.Time, error)
	Confirm(prompt string) (bool, error)
	Printf(format string, args ...any)
}
