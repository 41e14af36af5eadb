package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

const (
	adminUserSuffixLen = 5
	adminPasswordLen   = 8

	lowerDigits  = "abcdefghijklmnopqrstuvwxyz0123456789"
	letterDigits = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// AdminCredentialFile holds the single `username:password` line for the
// administrator. It is generated once on first run and read back on every
// admin login after that.
type AdminCredentialFile struct {
	path string
}

func NewAdminCredentialFile(path string) *AdminCredentialFile {
	return &AdminCredentialFile{path: path}
}

// Ensure generates the admin credential file if it does not exist yet and
// returns the stored username and password either way. created reports
// whether this call generated them, so the caller can show them to the
// operator exactly once.
func (a *AdminCredentialFile) Ensure() (username, password string, created bool, err error) {
	username, password, err = a.load()
	if err == nil {
		return username, password, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", "", false, err
	}

	username = "admin_" + randomString(lowerDigits, adminUserSuffixLen)
	password = randomString(letterDigits, adminPasswordLen)

	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return "", "", false, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(a.path, []byte(username+":"+password), 0600); err != nil {
		return "", "", false, fmt.Errorf("failed to write admin credential file: %w", err)
	}

	return username, password, true, nil
}

// Verify checks the given pair against the stored credentials. A mismatch or
// a missing file yields ErrCredentialNotFound.
func (a *AdminCredentialFile) Verify(username, password string) error {
	storedUser, storedPass, err := a.load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrCredentialNotFound
		}
		return err
	}

	if username != storedUser || password != storedPass {
		return ErrCredentialNotFound
	}
	return nil
}

func (a *AdminCredentialFile) load() (username, password string, err error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return "", "", err
	}

	user, pass, ok := strings.Cut(strings.TrimSpace(string(data)), ":")
	if !ok {
		return "", "", fmt.Errorf("%w: admin credential file is malformed", ErrCorruptRecord)
	}
	return user, pass, nil
}

func randomString(charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
