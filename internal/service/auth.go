package service

import (
	"errors"

	"github.com/okanite/minibank/internal/model"
	"github.com/okanite/minibank/internal/store"
)

// AuthenticateCustomer checks the account number and PIN against the
// credential file and returns the matching account. The credential must carry
// the user role and the account must actually exist in the store; anything
// else is reported as ErrAuthFailed so a caller can't probe which part was
// wrong.
func (s *Service) AuthenticateCustomer(number, pin string) (*model.Account, error) {
	role, err := s.credentials.Verify(number, pin)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	if role != model.RoleUser {
		return nil, ErrAuthFailed
	}

	acc, err := s.accounts.Get(number)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	return acc, nil
}

// AuthenticateAdmin checks the pair against the generated admin credential
// file.
func (s *Service) AuthenticateAdmin(username, password string) error {
	err := s.admin.Verify(username, password)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrAuthFailed
	}
	return err
}
