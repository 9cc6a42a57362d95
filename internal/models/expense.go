package models

import (
	"errors"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/smart-budget/planner/internal/types"
)

// Expense is a single dated, categorized amount in an account's ledger.
type Expense struct {
	Date     types.Date      `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

var (
	ErrInvalidAmount = errors.New("the amount must be zero or positive")
	ErrEmptyCategory = errors.New("the category must not be empty")
	ErrOutOfRange    = errors.New("no expense exists at this position")
)

// DisplayCategory returns the display form of a stored category name:
// the first letter upper-cased, the rest untouched. A multi-word
// category only capitalizes its first word.
func DisplayCategory(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

// Ledger is the ordered sequence of expenses for one account.
type Ledger []Expense

// Add appends an expense to the ledger.
//
// The category is trimmed and lower-cased before storage. Any non-empty
// category is accepted, the default categories only drive prompt order.
func (l *Ledger) Add(date types.Date, category string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return ErrEmptyCategory
	}

	*l = append(*l, Expense{Date: date, Category: category, Amount: amount})
	return nil
}

// All returns the expenses in insertion order, with 1-based positions for
// display. The sequence is restartable.
func (l Ledger) All() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, expense := range l {
			if !yield(i+1, expense) {
				return
			}
		}
	}
}

// Get returns the expense at the given 1-based position.
func (l Ledger) Get(position int) (Expense, error) {
	i, err := l.index(position)
	if err != nil {
		return Expense{}, err
	}
	return l[i], nil
}

// Edit replaces fields of the expense at the given 1-based position.
//
// A zero date and an empty category keep the stored values. A nil or
// negative amount keeps the stored amount, this is the silent-fallback
// policy for invalid amount input.
func (l Ledger) Edit(position int, date types.Date, category string, amount *decimal.Decimal) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}

	expense := &l[i]
	if !date.IsZero() {
		expense.Date = date
	}
	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		expense.Category = category
	}
	if amount != nil && !amount.IsNegative() {
		expense.Amount = *amount
	}

	return nil
}

// Delete removes the expense at the given 1-based position. Confirmation
// is the caller's concern.
func (l *Ledger) Delete(position int) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}

	*l = append((*l)[:i], (*l)[i+1:]...)
	return nil
}

// SumInRange returns the total amount of all expenses dated within the
// week, bounds included.
func (l Ledger) SumInRange(week types.Week) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range l {
		if week.Contains(expense.Date) {
			sum = sum.Add(expense.Amount)
		}
	}

	return sum
}

// SumByCategoryInRange returns per-category totals for all expenses dated
// within the week, keyed by the display form of the category. Categories
// without matching expenses are omitted.
func (l Ledger) SumByCategoryInRange(week types.Week) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range l {
		if !week.Contains(expense.Date) {
			continue
		}

		name := DisplayCategory(expense.Category)
		totals[name] = totals[name].Add(expense.Amount)
	}

	return totals
}

// SearchCategory returns the expenses whose category matches the glob
// pattern, with their 1-based positions. Matching is case-insensitive.
func (l Ledger) SearchCategory(pattern string) iter.Seq2[int, Expense] {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	return func(yield func(int, Expense) bool) {
		for i, expense := range l {
			if !glob.Glob(pattern, expense.Category) {
				continue
			}
			if !yield(i+1, expense) {
				return
			}
		}
	}
}

// index validates a 1-based display position and returns the slice index.
func (l Ledger) index(position int) (int, error) {
	if position < 1 || position > len(l) {
		return 0, ErrOutOfRange
	}
	return position - 1, nil
}
