package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/okanite/minibank/internal/model"
	"github.com/okanite/minibank/internal/validation"
)

// CreateAccount allocates a fresh account number, stores the account with an
// initial ledger entry and registers a user credential for it. The holder
// name is taken as-is; the initial balance must not be negative and the PIN
// must be exactly 4 digits.
func (s *Service) CreateAccount(holderName string, initialBalance decimal.Decimal, pin string) (string, error) {
	if initialBalance.IsNegative() {
		return "", fmt.Errorf("%w: initial balance cannot be negative", ErrValidation)
	}
	if err := validation.PIN(pin); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	acc := &model.Account{
		Number:     s.accounts.GenerateNumber(),
		HolderName: holderName,
		Balance:    initialBalance,
	}
	s.accounts.Put(acc)

	if err := s.ledger.Record(acc, "Account created with balance "+initialBalance.StringFixed(2)); err != nil {
		return "", err
	}
	if err := s.credentials.Append(acc.Number, pin, model.RoleUser); err != nil {
		return "", err
	}

	return acc.Number, nil
}

// Deposit increases the balance by amount and records the transaction.
func (s *Service) Deposit(number string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	acc, err := s.accounts.Get(number)
	if err != nil {
		return err
	}

	acc.Balance = acc.Balance.Add(amount)
	return s.ledger.Record(acc, "Deposited "+amount.StringFixed(2))
}

// Withdraw decreases the balance by amount and records the transaction. The
// balance must stay non-negative; a withdrawal that would overdraw is
// rejected without touching any state.
func (s *Service) Withdraw(number string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	acc, err := s.accounts.Get(number)
	if err != nil {
		return err
	}
	if acc.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	acc.Balance = acc.Balance.Sub(amount)
	return s.ledger.Record(acc, "Withdrew "+amount.StringFixed(2))
}

// BalanceOf returns the current balance of the account.
func (s *Service) BalanceOf(number string) (decimal.Decimal, error) {
	acc, err := s.accounts.Get(number)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return acc.Balance, nil
}

// TransactionsOf returns the account's history, oldest first. The returned
// slice is a copy, the caller can't grow the account's log through it.
func (s *Service) TransactionsOf(number string) ([]string, error) {
	acc, err := s.accounts.Get(number)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(acc.Transactions))
	copy(out, acc.Transactions)
	return out, nil
}

// ListAccounts returns every account in creation order. Administrative view.
func (s *Service) ListAccounts() []*model.Account {
	return s.accounts.All()
}

// EachLedgerEntry streams every raw line of the durable ledger to fn in
// append order. Administrative view.
func (s *Service) EachLedgerEntry(fn func(line string) error) error {
	return s.ledger.EachEntry(fn)
}
