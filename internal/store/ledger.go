package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okanite/minibank/internal/model"
)

// TimestampLayout is the second-resolution local-clock format used for every
// ledger entry.
const TimestampLayout = "2006-01-02 15:04:05"

// TransactionLog is the durable append-only ledger. Every balance-changing
// operation produces one `number: timestamp - description` line, and the same
// timestamped entry is mirrored into the account's in-memory history.
//
// The file append happens before the in-memory append. If the process dies
// between the two, disk and memory diverge until the next restart reloads the
// account file; that gap is accepted for a single-user tool.
type TransactionLog struct {
	path string
}

func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{path: path}
}

// Record appends a timestamped entry for the account to the ledger file and
// to the account's history.
func (l *TransactionLog) Record(acc *model.Account, description string) error {
	entry := time.Now().Format(TimestampLayout) + " - " + description

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open transaction log: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%s: %s\n", acc.Number, entry); err != nil {
		f.Close()
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close transaction log: %w", err)
	}

	acc.Transactions = append(acc.Transactions, entry)
	return nil
}

// EachEntry re-reads the ledger file and feeds every raw line to fn in append
// order. A missing file means no entries. Returning an error from fn stops
// the scan.
func (l *TransactionLog) EachEntry(fn func(line string) error) error {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read transaction log: %w", err)
	}
	return nil
}
