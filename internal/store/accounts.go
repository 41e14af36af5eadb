package store

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/okanite/minibank/internal/model"
)

// Account record layout, one line per account:
//
//	number|holder|balance|txn1#txn2#...#txnN
//
// Transaction descriptions must not contain '|' or '#'; the format has no
// escaping.
const (
	fieldSep = "|"
	txnSep   = "#"
)

// AccountStore owns every Account in memory and maps it to a single flat
// file. Load is called once at startup, Save rewrites the whole file.
type AccountStore struct {
	path  string
	accts map[string]*model.Account
	order []string
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{
		path:  path,
		accts: make(map[string]*model.Account),
	}
}

// Load reads the account file into memory. A missing file is an empty store.
// Malformed lines are skipped with a warning so one bad record can't take
// the whole bank down.
func (s *AccountStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open account file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		acc, err := decodeAccount(line)
		if err != nil {
			pterm.Warning.Printfln("Skipping corrupted account record on line %d: %v", lineNo, err)
			continue
		}
		s.Put(acc)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read account file: %w", err)
	}
	return nil
}

// Save rewrites the account file from scratch with every account currently
// in memory, preserving insertion order.
func (s *AccountStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to open account file for writing: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, number := range s.order {
		if _, err := w.WriteString(encodeAccount(s.accts[number]) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write account record: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush account file: %w", err)
	}
	return f.Close()
}

// GenerateNumber returns a random 5-digit account number not already in the
// store. The id space holds 90000 numbers, so it keeps drawing until it finds
// a free one rather than giving up after a fixed attempt count.
func (s *AccountStore) GenerateNumber() string {
	for {
		number := strconv.Itoa(rand.IntN(90000) + 10000)
		if _, taken := s.accts[number]; !taken {
			return number
		}
	}
}

func (s *AccountStore) Get(number string) (*model.Account, error) {
	acc, ok := s.accts[number]
	if !ok {
		return nil, fmt.Errorf("account '%s': %w", number, ErrAccountNotFound)
	}
	return acc, nil
}

// Put registers an account under its number. A number is only appended to the
// iteration order the first time it is seen, so re-putting keeps order stable.
func (s *AccountStore) Put(acc *model.Account) {
	if _, exists := s.accts[acc.Number]; !exists {
		s.order = append(s.order, acc.Number)
	}
	s.accts[acc.Number] = acc
}

// All returns every account in insertion order.
func (s *AccountStore) All() []*model.Account {
	out := make([]*model.Account, 0, len(s.order))
	for _, number := range s.order {
		out = append(out, s.accts[number])
	}
	return out
}

func (s *AccountStore) Len() int {
	return len(s.order)
}

func encodeAccount(acc *model.Account) string {
	return strings.Join([]string{
		acc.Number,
		acc.HolderName,
		acc.Balance.StringFixed(2),
		strings.Join(acc.Transactions, txnSep),
	}, fieldSep)
}

func decodeAccount(line string) (*model.Account, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrCorruptRecord, len(fields))
	}

	balance, err := decimal.NewFromString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid balance '%s'", ErrCorruptRecord, fields[2])
	}

	var txns []string
	if fields[3] != "" {
		txns = strings.Split(fields[3], txnSep)
	}

	return &model.Account{
		Number:       fields[0],
		HolderName:   fields[1],
		Balance:      balance,
		Transactions: txns,
	}, nil
}
