package models

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/smart-budget/planner/internal/types"
)

// ErrNotSunday reports that a manual transfer was requested on a day other
// than Sunday. It is informational, the account is left unchanged.
var ErrNotSunday = errors.New("manual transfers are only allowed on Sundays")

// ComputeRemaining returns the amount spent in the week containing today
// and the budget remaining for that week. Remaining is negative when the
// week ran over budget.
func (a *Account) ComputeRemaining(today types.Date) (spent, remaining decimal.Decimal) {
	spent = a.Expenses.SumInRange(types.WeekOf(today))
	return spent, a.WeeklyBudget.Sub(spent)
}

// ManualTransfer moves this week's remaining budget into savings. It is
// gated to Sundays: on any other day nothing changes and ErrNotSunday is
// reported.
func (a *Account) ManualTransfer(today types.Date) (SavingsEntry, error) {
	if !today.IsSunday() {
		return SavingsEntry{}, ErrNotSunday
	}

	return a.transferRemaining(today), nil
}

// AutoTransfer runs the once-per-login transfer. It is idempotent per
// calendar day: when a transfer already happened today nothing changes and
// applied is false. The Sunday gate deliberately does not apply here.
func (a *Account) AutoTransfer(today types.Date) (entry SavingsEntry, applied bool) {
	if a.LastTransfer.Equal(today) {
		return SavingsEntry{}, false
	}

	return a.transferRemaining(today), true
}

// transferRemaining applies the unconditional transfer shared by both
// trigger paths. The signed remaining is applied as-is, a week over budget
// debits savings. LastTransfer only ever moves forward.
func (a *Account) transferRemaining(today types.Date) SavingsEntry {
	_, remaining := a.ComputeRemaining(today)

	a.Savings = a.Savings.Add(remaining)
	if a.LastTransfer.Before(today) {
		a.LastTransfer = today
	}

	entry := SavingsEntry{Date: today, Amount: remaining}
	a.SavingsLog = append(a.SavingsLog, entry)
	return entry
}
