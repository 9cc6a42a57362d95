package shell

import (
	"errors"
	"fmt"

	"github.com/smart-budget/planner/internal/models"
)

// autoTransfer runs the once-per-login transfer right after login. When a
// transfer already happened today nothing is shown.
func (s *Shell) autoTransfer(account *models.Account) {
	entry, applied := account.AutoTransfer(s.now())
	if !applied {
		return
	}

	s.save()
	fmt.Fprintln(s.out, "\nAuto transferred weekly remaining to savings.")
	s.renderTransfer(entry)
	s.pause()
}

func (s *Shell) manualTransfer(account *models.Account) {
	fmt.Fprintln(s.out, "\nManual transfer is only allowed on Sunday.")

	entry, err := account.ManualTransfer(s.now())
	if errors.Is(err, models.ErrNotSunday) {
		// The rule was just printed, nothing changed.
		return
	}

	s.save()
	s.renderTransfer(entry)
}

func (s *Shell) renderTransfer(entry models.SavingsEntry) {
	if entry.Amount.IsNegative() {
		failureColor.Fprintf(s.out, "$%s deducted from savings.\n", entry.Amount.Abs().StringFixed(2))
	} else {
		successColor.Fprintf(s.out, "$%s added to savings.\n", entry.Amount.StringFixed(2))
	}
}
