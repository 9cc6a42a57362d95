// Package store persists the account mapping to a single JSON file.
//
// The file is read wholesale at startup and rewritten wholesale after
// every mutation. There is exactly one writer, durability is limited to
// writing a temporary file and renaming it over the old one.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/smart-budget/planner/internal/models"
)

var (
	ErrEmptyField         = errors.New("username and password must not be empty")
	ErrDuplicateUser      = errors.New("the username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store holds every account, keyed case-insensitively by username.
type Store struct {
	path string

	// accounts is keyed by the lower-cased username. The account keeps
	// the originally registered casing.
	accounts map[string]*models.Account
}

// Open reads the account file at path.
//
// A missing file yields an empty store. An unreadable or malformed file
// also yields an empty store, with a warning: startup never fails on bad
// state, it degrades.
func Open(path string) *Store {
	s := &Store{path: path, accounts: make(map[string]*models.Account)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read account file, starting with an empty store")
		return s
	}

	var byName map[string]*models.Account
	if err := json.Unmarshal(data, &byName); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("account file is malformed, starting with an empty store")
		return s
	}

	for name, account := range byName {
		// A username mapped to null is corrupt state, degrade instead
		// of failing startup.
		if account == nil {
			log.Warn().Str("path", path).Str("username", name).Msg("account entry is malformed, skipping it")
			continue
		}

		account.Username = name
		s.accounts[strings.ToLower(name)] = account
	}

	return s
}

// Save writes the whole store to the account file, creating the data
// directory if needed. The file is written to a temporary sibling first
// and renamed into place.
func (s *Store) Save() error {
	byName := make(map[string]*models.Account, len(s.accounts))
	for _, account := range s.accounts {
		byName[account.Username] = account
	}

	data, err := json.MarshalIndent(byName, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".accounts-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary account file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing account file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing account file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing account file: %w", err)
	}

	return nil
}

// Register creates a new account with a hashed password and zeroed budget
// and savings, and persists the store.
//
// Usernames are unique under case-insensitive comparison, the registered
// casing is preserved.
func (s *Store) Register(username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrEmptyField
	}

	key := strings.ToLower(username)
	if _, exists := s.accounts[key]; exists {
		return nil, ErrDuplicateUser
	}

	account := models.NewAccount(username, HashPassword(password))
	s.accounts[key] = account

	if err := s.Save(); err != nil {
		delete(s.accounts, key)
		return nil, err
	}

	log.Debug().Str("username", username).Msg("account registered")
	return account, nil
}

// Authenticate looks up the account case-insensitively and verifies the
// password digest.
//
// An unknown username and a wrong password both report
// ErrInvalidCredentials so that the response does not leak which one it
// was.
func (s *Store) Authenticate(username, password string) (*models.Account, error) {
	account, exists := s.accounts[strings.ToLower(strings.TrimSpace(username))]
	if !exists || account.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Get returns the account for a username, looked up case-insensitively.
func (s *Store) Get(username string) (*models.Account, bool) {
	account, exists := s.accounts[strings.ToLower(username)]
	return account, exists
}

// Len returns the number of accounts in the store.
func (s *Store) Len() int {
	return len(s.accounts)
}
