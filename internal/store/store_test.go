package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-budget/planner/internal/models"
	"github.com/smart-budget/planner/internal/store"
	"github.com/smart-budget/planner/internal/types"
)

func tmpFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "users.json")
}

func TestHashPassword(t *testing.T) {
	digest := store.HashPassword("testpassword123")

	assert.Equal(t, digest, store.HashPassword("testpassword123"), "hashing is deterministic")
	assert.Len(t, digest, 64)
	assert.NotEqual(t, store.HashPassword("password1"), store.HashPassword("password2"))
	assert.Len(t, store.HashPassword(""), 64)
}

func TestOpenMissingFile(t *testing.T) {
	s := store.Open(tmpFile(t))
	assert.Equal(t, 0, s.Len())
}

func TestOpenMalformedFile(t *testing.T) {
	path := tmpFile(t)
	require.Nil(t, os.WriteFile(path, []byte("{ not json"), 0o644))

	s := store.Open(path)
	assert.Equal(t, 0, s.Len(), "a malformed file degrades to an empty store")
}

func TestOpenNullAccountEntry(t *testing.T) {
	path := tmpFile(t)
	require.Nil(t, os.WriteFile(path, []byte(`{"alice": null}`), 0o644))

	s := store.Open(path)
	assert.Equal(t, 0, s.Len(), "a null account entry degrades like any other malformed state")
}

func TestOpenNullAccountEntryKeepsOthers(t *testing.T) {
	path := tmpFile(t)
	content := `{"alice": null, "Bob": {"passwordHash": "digest"}}`
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))

	s := store.Open(path)
	assert.Equal(t, 1, s.Len())

	account, ok := s.Get("bob")
	require.True(t, ok)
	assert.Equal(t, "Bob", account.Username)
}

func TestRegister(t *testing.T) {
	s := store.Open(tmpFile(t))

	account, err := s.Register("Alice", "secret")
	require.Nil(t, err)
	assert.Equal(t, "Alice", account.Username, "the registered casing is preserved")
	assert.Equal(t, store.HashPassword("secret"), account.PasswordHash)
	assert.True(t, account.WeeklyBudget.IsZero())
	assert.True(t, account.Savings.IsZero())
	assert.True(t, account.LastTransfer.IsZero())
	assert.Equal(t, 1, s.Len())
}

func TestRegisterEmptyFields(t *testing.T) {
	s := store.Open(tmpFile(t))

	_, err := s.Register("", "secret")
	assert.ErrorIs(t, err, store.ErrEmptyField)

	_, err = s.Register("alice", "   ")
	assert.ErrorIs(t, err, store.ErrEmptyField)

	assert.Equal(t, 0, s.Len())
}

func TestRegisterDuplicate(t *testing.T) {
	s := store.Open(tmpFile(t))

	_, err := s.Register("Alice", "secret")
	require.Nil(t, err)

	_, err = s.Register("alice", "other")
	assert.ErrorIs(t, err, store.ErrDuplicateUser, "uniqueness is case-insensitive")

	_, err = s.Register("ALICE", "other")
	assert.ErrorIs(t, err, store.ErrDuplicateUser)

	assert.Equal(t, 1, s.Len())
}

func TestAuthenticate(t *testing.T) {
	s := store.Open(tmpFile(t))
	_, err := s.Register("Alice", "secret")
	require.Nil(t, err)

	account, err := s.Authenticate("ALICE", "secret")
	require.Nil(t, err)
	assert.Equal(t, "Alice", account.Username, "lookup is case-insensitive, the stored casing is returned")

	// Unknown user and wrong password are indistinguishable.
	_, err = s.Authenticate("bob", "secret")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = s.Authenticate("Alice", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestRoundTrip(t *testing.T) {
	path := tmpFile(t)
	s := store.Open(path)

	account, err := s.Register("Alice", "secret")
	require.Nil(t, err)
	require.Nil(t, account.SetWeeklyBudget(decimal.NewFromInt(100)))
	require.Nil(t, account.Expenses.Add(types.NewDate(2025, time.July, 1), "food", decimal.NewFromFloat(25.50)))
	require.Nil(t, account.Expenses.Add(types.NewDate(2025, time.July, 2), "transport", decimal.NewFromFloat(15.75)))

	entry, applied := account.AutoTransfer(types.NewDate(2025, time.July, 4))
	require.True(t, applied)
	require.Nil(t, s.Save())

	reopened := store.Open(path)
	require.Equal(t, 1, reopened.Len())

	loaded, ok := reopened.Get("alice")
	require.True(t, ok)
	assert.Equal(t, account.ID, loaded.ID)
	assert.Equal(t, "Alice", loaded.Username)
	assert.Equal(t, account.PasswordHash, loaded.PasswordHash)
	assert.True(t, account.CreatedAt.Equal(loaded.CreatedAt))
	assert.True(t, account.WeeklyBudget.Equal(loaded.WeeklyBudget))
	assert.True(t, account.Savings.Equal(loaded.Savings))
	assert.True(t, account.LastTransfer.Equal(loaded.LastTransfer))

	require.Len(t, loaded.Expenses, 2)
	assert.Equal(t, "food", loaded.Expenses[0].Category)
	assert.True(t, decimal.NewFromFloat(25.50).Equal(loaded.Expenses[0].Amount))
	assert.True(t, types.NewDate(2025, time.July, 1).Equal(loaded.Expenses[0].Date))

	require.Len(t, loaded.SavingsLog, 1)
	assert.True(t, entry.Amount.Equal(loaded.SavingsLog[0].Amount))
	assert.True(t, entry.Date.Equal(loaded.SavingsLog[0].Date))
}

func TestSaveCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "users.json")
	s := store.Open(path)

	_, err := s.Register("Alice", "secret")
	require.Nil(t, err)

	_, err = os.Stat(path)
	assert.Nil(t, err)
}

func TestSaveIsAtomicReplacement(t *testing.T) {
	path := tmpFile(t)
	s := store.Open(path)

	_, err := s.Register("Alice", "secret")
	require.Nil(t, err)
	require.Nil(t, s.Save())

	// No temporary files are left behind next to the store.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.Nil(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestRegisterPersistsImmediately(t *testing.T) {
	path := tmpFile(t)
	s := store.Open(path)

	_, err := s.Register("Alice", "secret")
	require.Nil(t, err)

	reopened := store.Open(path)
	account, ok := reopened.Get("Alice")
	require.True(t, ok)
	assert.IsType(t, &models.Account{}, account)
	assert.Equal(t, "Alice", account.Username)
}
