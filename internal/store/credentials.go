package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okanite/minibank/internal/model"
)

// CredentialFile is the append-only customer credential registry, one
// `number:pin:role` line per credential. Lookups scan the file directly
// instead of caching it: credential checks only happen at login, the file is
// tiny, and scanning can never drift from what is on disk.
type CredentialFile struct {
	path string
}

func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

// Append adds one credential line. No uniqueness check is performed;
// duplicates are tolerated and Verify resolves them by taking the first match.
func (c *CredentialFile) Append(number, pin string, role model.Role) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open credential file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%s:%s:%s\n", number, pin, role); err != nil {
		f.Close()
		return fmt.Errorf("failed to append credential: %w", err)
	}
	return f.Close()
}

// Verify scans the file line by line and returns the role of the first line
// whose account number and PIN both match. A missing file or no matching line
// yields ErrCredentialNotFound; malformed lines are skipped.
func (c *CredentialFile) Verify(number, pin string) (model.Role, error) {
	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrCredentialNotFound
		}
		return "", fmt.Errorf("failed to open credential file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ":")
		if len(fields) != 3 {
			continue
		}
		if fields[0] == number && fields[1] == pin {
			return model.Role(fields[2]), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}
	return "", ErrCredentialNotFound
}
