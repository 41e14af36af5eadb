package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/okanite/minibank/internal/config"
	"github.com/okanite/minibank/internal/service"
	"github.com/okanite/minibank/internal/store"
)

type App struct {
	Service  *service.Service
	Accounts *store.AccountStore
}

// NewApp resolves the data directory, loads the account file into memory and
// makes sure the admin credential file exists, then returns the wired App.
// The returned cleanup flushes the account store; it must run before the
// process exits.
func NewApp(cfg *config.Config) (*App, func(), error) {
	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		var err error
		dataDir, err = getAppDataDir()
		if err != nil {
			return nil, nil, err
		}
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	accounts := store.NewAccountStore(filepath.Join(dataDir, cfg.Storage.AccountsFile))
	credentials := store.NewCredentialFile(filepath.Join(dataDir, cfg.Storage.CredentialsFile))
	ledger := store.NewTransactionLog(filepath.Join(dataDir, cfg.Storage.TransactionsFile))
	admin := store.NewAdminCredentialFile(filepath.Join(dataDir, cfg.Storage.AdminCredentialsFile))

	if err := accounts.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	username, password, created, err := admin.Ensure()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare admin credentials: %w", err)
	}
	if created {
		// Shown exactly once, on the run that generated them.
		pterm.DefaultSection.Println("Admin Credentials Generated")
		pterm.Info.Printfln("Username: %s", username)
		pterm.Info.Printfln("Password: %s", password)
	}

	svc := service.NewService(accounts, credentials, ledger, admin)

	cleanup := func() {
		if err := svc.Flush(); err != nil {
			pterm.Error.Printfln("Failed to save accounts: %v", err)
		}
	}

	return &App{Service: svc, Accounts: accounts}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".minibank"), nil
	}

	return filepath.Join(configDir, "minibank"), nil
}
