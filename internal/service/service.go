// Package service is the operation layer of the bank: it enforces the
// business invariants (non-negative balances, 4-digit PINs, unique account
// numbers) and turns every balance change into a ledger entry.
package service

import (
	"github.com/okanite/minibank/internal/store"
)

type Service struct {
	accounts    *store.AccountStore
	credentials *store.CredentialFile
	ledger      *store.TransactionLog
	admin       *store.AdminCredentialFile
}

func NewService(
	accounts *store.AccountStore,
	credentials *store.CredentialFile,
	ledger *store.TransactionLog,
	admin *store.AdminCredentialFile,
) *Service {
	return &Service{
		accounts:    accounts,
		credentials: credentials,
		ledger:      ledger,
		admin:       admin,
	}
}

// Flush writes the in-memory account state back to the account file. The
// ledger and credential files are already durable, they are appended per
// operation.
func (s *Service) Flush() error {
	return s.accounts.Save()
}
