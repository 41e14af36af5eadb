package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/okanite/minibank/internal/service"
	"github.com/okanite/minibank/internal/ui"
	"github.com/okanite/minibank/internal/ui/prompts"
	"github.com/okanite/minibank/internal/ui/views"
	"github.com/okanite/minibank/internal/validation"
)

const (
	menuCreateAccount = "Create Account"
	menuViewAccounts  = "View All Accounts"
	menuViewLedger    = "View All Transactions"
	menuLogout        = "Logout"
)

const maxAdminAttempts = 3

func NewAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Log in as administrator and manage accounts",
		Long: `Log in with the generated admin credentials, then create accounts and
review every account and ledger entry in the system.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(runAdminLogin)
		},
	}
}

// runAdminLogin gives the operator up to three attempts at the admin
// credentials before giving up with errTooManyAttempts.
func runAdminLogin(svc *service.Service) error {
	for attempt := 1; attempt <= maxAdminAttempts; attempt++ {
		username, password, err := prompts.PromptAdminCredentials()
		if err != nil {
			return err
		}

		err = svc.AuthenticateAdmin(username, password)
		if err == nil {
			return runAdminMenu(svc)
		}
		if !errors.Is(err, service.ErrAuthFailed) {
			return err
		}

		remaining := maxAdminAttempts - attempt
		if remaining > 0 {
			pterm.Error.Printfln("Incorrect admin credentials. %d attempt(s) remaining.", remaining)
		}
	}

	return errTooManyAttempts
}

func runAdminMenu(svc *service.Service) error {
	ui.PrintTitle("Admin Menu")

	for {
		choice, err := prompts.PromptSelect("Admin Menu", []string{
			menuCreateAccount,
			menuViewAccounts,
			menuViewLedger,
			menuLogout,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuCreateAccount:
			if err := runCreateAccount(svc); err != nil {
				return err
			}

		case menuViewAccounts:
			if err := views.RenderAccountList(svc.ListAccounts()); err != nil {
				return err
			}

		case menuViewLedger:
			if err := renderLedger(svc); err != nil {
				return err
			}

		case menuLogout:
			pterm.Info.Println("Logging out of admin account.")
			return nil
		}
	}
}

func runCreateAccount(svc *service.Service) error {
	holderName, err := prompts.PromptHolderName()
	if err != nil {
		return err
	}

	balanceInput, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}
	initialBalance, err := validation.ParseAmount(balanceInput)
	if err != nil {
		return err
	}

	pin, err := prompts.PromptNewPIN()
	if err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Account creation cancelled.")
		return nil
	}

	number, err := svc.CreateAccount(holderName, initialBalance, pin)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			pterm.Error.Println(capitalize(err.Error()))
			return nil
		}
		return err
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account No"), number},
		{pterm.Blue("Holder"), holderName},
		{pterm.Blue("Balance"), initialBalance.StringFixed(2)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Printfln("Account successfully created! Your Account Number is: %s", number)
	return nil
}

func renderLedger(svc *service.Service) error {
	pterm.DefaultSection.Println("Transaction History")

	count := 0
	err := svc.EachLedgerEntry(func(line string) error {
		views.RenderLedgerLine(line)
		count++
		return nil
	})
	if err != nil {
		return err
	}

	if count == 0 {
		pterm.Info.Println("No transactions found.")
	}
	return nil
}
