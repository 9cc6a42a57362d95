package shell

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/smart-budget/planner/internal/models"
	"github.com/smart-budget/planner/internal/types"
)

func (s *Shell) renderExpense(position int, expense models.Expense) {
	fmt.Fprintf(s.out, "%d. %s - $%s [%s]\n", position, expense.Date, expense.Amount.StringFixed(2), expense.Category)
}

// renderSummary prints the weekly figures shown above the main menu.
func (s *Shell) renderSummary(account *models.Account) {
	today := s.now()
	week := types.WeekOf(today)
	spent, remaining := account.ComputeRemaining(today)

	fmt.Fprintf(s.out, "\nWeekly Budget: $%s\n", account.WeeklyBudget.StringFixed(2))
	fmt.Fprintf(s.out, "Spent: $%s\n", spent.StringFixed(2))
	fmt.Fprintf(s.out, "Remaining: $%s\n", remaining.StringFixed(2))
	fmt.Fprintf(s.out, "Savings: $%s\n", account.Savings.StringFixed(2))

	totals := account.Expenses.SumByCategoryInRange(week)
	if len(totals) == 0 {
		fmt.Fprintln(s.out, "\nNo expenses this week.")
		return
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(s.out, "\nThis week by category:")
	for _, name := range names {
		fmt.Fprintf(s.out, " - %s: $%s\n", name, totals[name].StringFixed(2))
	}
}

func (s *Shell) weeklyReport(account *models.Account) {
	week := types.WeekOf(s.now())
	s.title(fmt.Sprintf("\nWeekly Report (%s)", week))
	fmt.Fprintln(s.out, strings.Repeat("=", 40))

	total := decimal.Zero
	for _, expense := range account.Expenses.All() {
		if !week.Contains(expense.Date) {
			continue
		}
		fmt.Fprintf(s.out, "%s - $%s [%s]\n", expense.Date, expense.Amount.StringFixed(2), expense.Category)
		total = total.Add(expense.Amount)
	}

	fmt.Fprintln(s.out, strings.Repeat("=", 40))
	fmt.Fprintf(s.out, "Total Spent: $%s\n", total.StringFixed(2))
	fmt.Fprintf(s.out, "Remaining: $%s\n", account.WeeklyBudget.Sub(total).StringFixed(2))
}

func (s *Shell) savingsHistory(account *models.Account) {
	s.title("\nSavings History")
	if len(account.SavingsLog) == 0 {
		fmt.Fprintln(s.out, "No transfers yet.")
		return
	}

	for _, entry := range account.SavingsLog {
		if entry.Amount.IsNegative() {
			failureColor.Fprintf(s.out, "%s  -$%s\n", entry.Date, entry.Amount.Abs().StringFixed(2))
		} else {
			successColor.Fprintf(s.out, "%s  +$%s\n", entry.Date, entry.Amount.StringFixed(2))
		}
	}
	fmt.Fprintf(s.out, "Balance: $%s\n", account.Savings.StringFixed(2))
}
