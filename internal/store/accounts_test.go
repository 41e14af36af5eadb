package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanite/minibank/internal/model"
	"github.com/okanite/minibank/internal/store"
)

func newAccount(number, holder, balance string, txns ...string) *model.Account {
	return &model.Account{
		Number:       number,
		HolderName:   holder,
		Balance:      decimal.RequireFromString(balance),
		Transactions: txns,
	}
}

func TestAccountStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")

	src := store.NewAccountStore(path)
	src.Put(newAccount("10001", "Asha", "100.00", "2025-01-01 10:00:00 - Account created with balance 100.00"))
	src.Put(newAccount("10002", "Bojan", "0.00"))
	src.Put(newAccount("10003", "Chen Wei", "2500.50",
		"2025-01-02 09:00:00 - Account created with balance 2000.00",
		"2025-01-02 09:05:00 - Deposited 500.50",
	))
	require.NoError(t, src.Save())

	dst := store.NewAccountStore(path)
	require.NoError(t, dst.Load())
	require.Equal(t, 3, dst.Len())

	want := src.All()
	got := dst.All()
	for i := range want {
		assert.Equal(t, want[i].Number, got[i].Number)
		assert.Equal(t, want[i].HolderName, got[i].HolderName)
		assert.True(t, want[i].Balance.Equal(got[i].Balance),
			"balance mismatch for %s: want %s got %s", want[i].Number, want[i].Balance, got[i].Balance)
		assert.Equal(t, want[i].Transactions, got[i].Transactions)
	}
}

func TestAccountStore_SaveOverwritesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")

	s := store.NewAccountStore(path)
	s.Put(newAccount("10001", "Asha", "100.00"))
	s.Put(newAccount("10002", "Bojan", "50.00"))
	require.NoError(t, s.Save())

	// Saving a store with fewer accounts must not leave stale lines behind.
	smaller := store.NewAccountStore(path)
	smaller.Put(newAccount("10003", "Chen Wei", "75.00"))
	require.NoError(t, smaller.Save())

	reloaded := store.NewAccountStore(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, "10003", reloaded.All()[0].Number)
}

func TestAccountStore_LoadSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")

	lines := "10001|Asha|100.00|\n" +
		"not a record at all\n" +
		"10002|Bojan|not-a-number|\n" +
		"10003|Chen Wei|42.00|2025-01-01 10:00:00 - Deposited 42.00\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))

	s := store.NewAccountStore(path)
	require.NoError(t, s.Load())

	require.Equal(t, 2, s.Len())
	all := s.All()
	assert.Equal(t, "10001", all[0].Number)
	assert.Equal(t, "10003", all[1].Number)
	assert.Equal(t, []string{"2025-01-01 10:00:00 - Deposited 42.00"}, all[1].Transactions)
}

func TestAccountStore_LoadMissingFile(t *testing.T) {
	s := store.NewAccountStore(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestAccountStore_GetUnknown(t *testing.T) {
	s := store.NewAccountStore(filepath.Join(t.TempDir(), "accounts.txt"))
	_, err := s.Get("00000")
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAccountStore_AllInsertionOrder(t *testing.T) {
	s := store.NewAccountStore(filepath.Join(t.TempDir(), "accounts.txt"))

	numbers := []string{"99999", "10000", "55555", "33333"}
	for _, n := range numbers {
		s.Put(newAccount(n, "Holder "+n, "0.00"))
	}

	all := s.All()
	require.Len(t, all, len(numbers))
	for i, n := range numbers {
		assert.Equal(t, n, all[i].Number)
	}
}

func TestAccountStore_GenerateNumber(t *testing.T) {
	s := store.NewAccountStore(filepath.Join(t.TempDir(), "accounts.txt"))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := s.GenerateNumber()

		require.Len(t, number, 5)
		for _, c := range number {
			require.True(t, c >= '0' && c <= '9', "non-digit in account number %q", number)
		}
		require.False(t, seen[number], "GenerateNumber returned an id already in the store: %s", number)

		seen[number] = true
		s.Put(newAccount(number, "Holder", "0.00"))
	}
}
