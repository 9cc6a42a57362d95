// Package shell implements the interactive terminal session.
//
// The session is strictly sequential: every prompt blocks until answered,
// and every failure re-prompts instead of exiting. The shell owns all
// free-text parsing, the core packages only ever see validated values.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/smart-budget/planner/internal/models"
	"github.com/smart-budget/planner/internal/store"
	"github.com/smart-budget/planner/internal/types"
)

// Shell drives one interactive session over a terminal.
type Shell struct {
	in    *bufio.Reader
	out   io.Writer
	stdin *os.File // set when reading from a real terminal, for no-echo passwords

	store      *store.Store
	categories []string

	now func() types.Date
	eof bool
}

// New returns a shell reading from stdin and writing to stdout.
func New(st *store.Store, categories []string) *Shell {
	s := newShell(st, categories, os.Stdin, os.Stdout)
	s.stdin = os.Stdin
	return s
}

func newShell(st *store.Store, categories []string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		store:      st,
		categories: categories,
		now:        types.Today,
	}
}

// Run drives the session: the authentication menu first, then the main
// menu for the logged-in account. It returns when the user exits or input
// ends.
func (s *Shell) Run() error {
	for {
		s.clear()
		s.title("===== Smart Weekly Budget Planner =====")
		fmt.Fprintln(s.out, "1. Login")
		fmt.Fprintln(s.out, "2. Register")
		fmt.Fprintln(s.out, "3. Exit")

		switch s.promptLine("Select an option (1-3): ") {
		case "1":
			account, err := s.login()
			if err != nil {
				s.failure(err.Error())
				s.pause()
				continue
			}
			s.autoTransfer(account)
			if quit := s.mainMenu(account); quit {
				return nil
			}
		case "2":
			account, err := s.register()
			if err != nil {
				s.failure(err.Error())
				s.pause()
				continue
			}
			if quit := s.mainMenu(account); quit {
				return nil
			}
		case "3":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			if s.eof {
				return nil
			}
			s.failure("Invalid choice.")
			s.pause()
		}
	}
}

func (s *Shell) login() (*models.Account, error) {
	username := s.promptLine("Enter username: ")
	password := s.promptPassword("Enter password: ")

	account, err := s.store.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	s.success("Login successful!")
	log.Debug().Str("username", account.Username).Msg("session started")
	return account, nil
}

func (s *Shell) register() (*models.Account, error) {
	username := s.promptLine("Enter new username: ")
	password := s.promptPassword("Enter password: ")

	account, err := s.store.Register(username, password)
	if err != nil {
		return nil, err
	}

	s.success("Registration successful!")
	return account, nil
}

// mainMenu returns true when the user chose to exit the program rather
// than log out.
func (s *Shell) mainMenu(account *models.Account) bool {
	for {
		if s.eof {
			return true
		}

		s.clear()
		s.title(fmt.Sprintf("==== Smart Weekly Budget Planner (User: %s) ====", account.Username))
		s.renderSummary(account)

		fmt.Fprintln(s.out, "\n1. Set Weekly Budget")
		fmt.Fprintln(s.out, "2. Expense Management")
		fmt.Fprintln(s.out, "3. View Weekly Report")
		fmt.Fprintln(s.out, "4. Transfer Remaining to Savings (Sunday only)")
		fmt.Fprintln(s.out, "5. Savings History")
		fmt.Fprintln(s.out, "6. Search Expenses")
		fmt.Fprintln(s.out, "7. Save and Exit")
		fmt.Fprintln(s.out, "8. Logout")

		switch s.promptLine("Select an option (1-8): ") {
		case "1":
			s.setBudget(account)
		case "2":
			s.expenseMenu(account)
		case "3":
			s.weeklyReport(account)
			s.pause()
		case "4":
			s.manualTransfer(account)
			s.pause()
		case "5":
			s.savingsHistory(account)
			s.pause()
		case "6":
			s.searchExpenses(account)
			s.pause()
		case "7":
			s.save()
			fmt.Fprintln(s.out, "Data saved. Goodbye!")
			return true
		case "8":
			return false
		default:
			if s.eof {
				return true
			}
			s.failure("Invalid choice.")
			s.pause()
		}
	}
}

func (s *Shell) setBudget(account *models.Account) {
	amount := s.promptAmount("Enter your weekly budget: $")
	if s.eof {
		return
	}

	if err := account.SetWeeklyBudget(amount); err != nil {
		s.failure(err.Error())
		return
	}

	s.save()
	s.success("Weekly budget set successfully!")
	s.pause()
}

// save persists the store. A failed save is reported and logged but never
// ends the session.
func (s *Shell) save() {
	if err := s.store.Save(); err != nil {
		log.Error().Err(err).Msg("could not save accounts")
		s.failure("Could not save your data.")
	}
}
