package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smart-budget/planner/internal/models"
)

func (s *Shell) expenseMenu(account *models.Account) {
	fmt.Fprintln(s.out, "\nExpense Management:")
	fmt.Fprintln(s.out, " a. Add Expense")
	fmt.Fprintln(s.out, " b. Edit/Delete Expense")

	switch strings.ToLower(s.promptLine("Choose an option (a/b): ")) {
	case "a":
		s.addExpenses(account)
	case "b":
		s.editDeleteExpense(account)
	default:
		s.failure("Invalid choice.")
	}
	s.pause()
}

// addExpenses prompts once per configured category, then loops over custom
// categories. Blank or "0" skips a category, an invalid amount skips it
// with a message.
func (s *Shell) addExpenses(account *models.Account) {
	s.title("\nAdd Expenses")
	today := s.now()
	date := s.promptDate(fmt.Sprintf("Enter date (YYYY-MM-DD) [default: %s]: ", today), today)

	fmt.Fprintln(s.out, "\nLeave blank or 0 to skip a category.")
	for _, category := range s.categories {
		input := s.promptLine(fmt.Sprintf("Enter expense for %s: ", models.DisplayCategory(category)))
		if input == "" || input == "0" {
			continue
		}

		amount, err := ParseAmount(input)
		if err != nil {
			s.failure(fmt.Sprintf("Invalid amount for %s. Skipped.", category))
			continue
		}

		if err := account.Expenses.Add(date, category, amount); err != nil {
			s.failure(err.Error())
		}
	}

	for s.confirm("\nAdd a custom category? (yes/no): ") {
		category := s.promptLine("Enter custom category name: ")
		if category == "" {
			s.failure("Category name cannot be empty.")
			continue
		}

		amount := s.promptAmount(fmt.Sprintf("Enter amount for %s: $", models.DisplayCategory(category)))
		if s.eof {
			break
		}

		if err := account.Expenses.Add(date, category, amount); err != nil {
			s.failure(err.Error())
		}
	}

	s.save()
	s.success("Expenses added successfully.")
}

func (s *Shell) editDeleteExpense(account *models.Account) {
	if len(account.Expenses) == 0 {
		fmt.Fprintln(s.out, "\nNo expenses to edit or delete.")
		return
	}

	s.title("\nAll Expenses:")
	for position, expense := range account.Expenses.All() {
		s.renderExpense(position, expense)
	}

	position, err := strconv.Atoi(s.promptLine("\nEnter the number of the expense to edit/delete: "))
	if err != nil {
		s.failure("Invalid selection.")
		return
	}

	expense, err := account.Expenses.Get(position)
	if err != nil {
		s.failure("Invalid selection.")
		return
	}

	fmt.Fprintf(s.out, "\nSelected: %s - $%s [%s]\n", expense.Date, expense.Amount.StringFixed(2), expense.Category)

	switch strings.ToLower(s.promptLine("Type 'edit' to modify or 'delete' to remove this expense: ")) {
	case "edit":
		s.editExpense(account, position, expense)
	case "delete":
		if !s.confirm("Are you sure? (yes/no): ") {
			return
		}
		if err := account.Expenses.Delete(position); err != nil {
			s.failure("Invalid selection.")
			return
		}
		s.save()
		s.success("Expense deleted.")
	default:
		s.failure("Invalid action.")
	}
}

// editExpense keeps every field whose prompt is left blank. An amount that
// does not parse also keeps the stored value.
func (s *Shell) editExpense(account *models.Account, position int, expense models.Expense) {
	date := s.promptDate(fmt.Sprintf("New date [Leave blank to keep '%s']: ", expense.Date), expense.Date)
	category := s.promptLine(fmt.Sprintf("New category [Leave blank to keep '%s']: ", expense.Category))

	var amount *decimal.Decimal
	if input := s.promptLine(fmt.Sprintf("New amount [Leave blank to keep $%s]: ", expense.Amount.StringFixed(2))); input != "" {
		parsed, err := ParseAmount(input)
		if err != nil {
			s.failure("Invalid amount. Keeping old amount.")
		} else {
			amount = &parsed
		}
	}

	if err := account.Expenses.Edit(position, date, category, amount); err != nil {
		s.failure("Invalid selection.")
		return
	}

	s.save()
	s.success("Expense updated successfully!")
}

func (s *Shell) searchExpenses(account *models.Account) {
	pattern := s.promptLine("\nCategory pattern (* matches anything): ")
	if pattern == "" {
		return
	}

	found := false
	for position, expense := range account.Expenses.SearchCategory(pattern) {
		s.renderExpense(position, expense)
		found = true
	}
	if !found {
		fmt.Fprintln(s.out, "No matching expenses.")
	}
}
