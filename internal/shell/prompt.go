package shell

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/smart-budget/planner/internal/models"
	"github.com/smart-budget/planner/internal/types"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// ParseAmount parses a non-negative decimal amount from free-text input.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, models.ErrInvalidAmount
	}
	return amount, nil
}

// promptLine prints the label and reads one trimmed line. After the input
// ends it returns the empty string, callers check eof where looping on ""
// would spin.
func (s *Shell) promptLine(label string) string {
	if s.eof {
		return ""
	}

	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		s.eof = true
	}
	return strings.TrimSpace(line)
}

// promptPassword reads without echo when attached to a terminal and falls
// back to a plain line otherwise.
func (s *Shell) promptPassword(label string) string {
	if s.stdin != nil && term.IsTerminal(int(s.stdin.Fd())) {
		fmt.Fprint(s.out, label)
		raw, err := term.ReadPassword(int(s.stdin.Fd()))
		fmt.Fprintln(s.out)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	return s.promptLine(label)
}

// promptAmount re-prompts until it reads a valid non-negative amount.
func (s *Shell) promptAmount(label string) decimal.Decimal {
	for {
		input := s.promptLine(label)
		if s.eof {
			return decimal.Zero
		}

		amount, err := ParseAmount(input)
		if err != nil {
			s.failure("Invalid amount. Enter a non-negative number.")
			continue
		}
		return amount
	}
}

// promptDate reads a calendar date, substituting the fallback on blank or
// invalid input.
func (s *Shell) promptDate(label string, fallback types.Date) types.Date {
	input := s.promptLine(label)
	if input == "" {
		return fallback
	}

	date, err := types.ParseDate(input)
	if err != nil {
		s.failure("Invalid date format. Using default.")
		return fallback
	}
	return date
}

// confirm reads a yes/no answer, anything but "yes" declines.
func (s *Shell) confirm(label string) bool {
	return strings.EqualFold(s.promptLine(label), "yes")
}

func (s *Shell) pause() {
	s.promptLine("\nPress Enter to continue...")
}

func (s *Shell) clear() {
	fmt.Fprint(s.out, "\033[H\033[2J")
}

func (s *Shell) title(text string) {
	titleColor.Fprintln(s.out, text)
}

func (s *Shell) success(text string) {
	successColor.Fprintln(s.out, text)
}

func (s *Shell) failure(text string) {
	failureColor.Fprintln(s.out, text)
}
