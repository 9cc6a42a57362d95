package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-budget/planner/internal/types"
)

// Account is one user's budget, ledger and savings state.
//
// The username is case-preserved, uniqueness is checked case-insensitively
// by the store. It is serialized as the key of the account mapping, not as
// a field.
type Account struct {
	ID           uuid.UUID       `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	Username     string          `json:"-"`
	PasswordHash string          `json:"passwordHash"`
	WeeklyBudget decimal.Decimal `json:"weeklyBudget"`
	Savings      decimal.Decimal `json:"savings"`
	LastTransfer types.Date      `json:"lastTransfer"`
	Expenses     Ledger          `json:"expenses"`
	SavingsLog   []SavingsEntry  `json:"savingsLog"`
}

// SavingsEntry is one append-only audit record of a transfer. A negative
// amount denotes a deduction for a week that ran over budget.
type SavingsEntry struct {
	Date   types.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

var ErrNegativeBudget = errors.New("the weekly budget must be zero or positive")

// NewAccount returns an account with all numeric fields zeroed and no
// transfer recorded yet.
func NewAccount(username, passwordHash string) *Account {
	return &Account{
		ID:           uuid.New(),
		CreatedAt:    time.Now().In(time.UTC),
		Username:     username,
		PasswordHash: passwordHash,
	}
}

// SetWeeklyBudget replaces the weekly budget.
func (a *Account) SetWeeklyBudget(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeBudget
	}

	a.WeeklyBudget = amount
	return nil
}
