package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/okanite/minibank/internal/model"
	"github.com/okanite/minibank/internal/service"
	"github.com/okanite/minibank/internal/ui"
	"github.com/okanite/minibank/internal/ui/prompts"
	"github.com/okanite/minibank/internal/ui/views"
	"github.com/okanite/minibank/internal/validation"
)

const (
	menuDeposit      = "Deposit Money"
	menuWithdraw     = "Withdraw Money"
	menuBalance      = "Check Balance"
	menuTransactions = "View Transactions"
)

func NewLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to a customer account",
		Long:  `Log in with an account number and PIN, then deposit, withdraw and review the account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(runCustomerLogin)
		},
	}
}

// runCustomerLogin authenticates one customer. A bad number/PIN pair just
// reports failure and returns to the caller's menu; it is not an attempt at
// the admin limit.
func runCustomerLogin(svc *service.Service) error {
	number, err := prompts.PromptAccountNumber()
	if err != nil {
		return err
	}

	pin, err := prompts.PromptPIN()
	if err != nil {
		return err
	}

	acc, err := svc.AuthenticateCustomer(number, pin)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			pterm.Error.Println("Invalid account number or PIN.")
			return nil
		}
		return err
	}

	return runCustomerMenu(svc, acc)
}

func runCustomerMenu(svc *service.Service, acc *model.Account) error {
	ui.PrintTitle("Welcome, %s!", acc.HolderName)

	for {
		choice, err := prompts.PromptSelect("Customer Menu", []string{
			menuDeposit,
			menuWithdraw,
			menuBalance,
			menuTransactions,
			menuLogout,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuDeposit:
			if err := runDeposit(svc, acc.Number); err != nil {
				return err
			}

		case menuWithdraw:
			if err := runWithdraw(svc, acc.Number); err != nil {
				return err
			}

		case menuBalance:
			balance, err := svc.BalanceOf(acc.Number)
			if err != nil {
				return err
			}
			pterm.Info.Printfln("Your current balance is: %s", balance.StringFixed(2))

		case menuTransactions:
			entries, err := svc.TransactionsOf(acc.Number)
			if err != nil {
				return err
			}
			views.RenderHistory(acc, entries)

		case menuLogout:
			pterm.Info.Println("Logging out.")
			return nil
		}
	}
}

func runDeposit(svc *service.Service, number string) error {
	input, err := prompts.PromptAmount("Deposit amount:")
	if err != nil {
		return err
	}
	amount, err := validation.ParseAmount(input)
	if err != nil {
		return err
	}

	if err := svc.Deposit(number, amount); err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			pterm.Error.Println("Deposit must be a positive number.")
			return nil
		}
		return err
	}

	pterm.Success.Println("Deposit successful.")
	return nil
}

func runWithdraw(svc *service.Service, number string) error {
	input, err := prompts.PromptAmount("Withdrawal amount:")
	if err != nil {
		return err
	}
	amount, err := validation.ParseAmount(input)
	if err != nil {
		return err
	}

	if err := svc.Withdraw(number, amount); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			pterm.Error.Println("Withdrawal must be a positive number.")
			return nil
		case errors.Is(err, service.ErrInsufficientFunds):
			pterm.Error.Println("Insufficient balance.")
			return nil
		}
		return err
	}

	pterm.Success.Println("Withdrawal successful.")
	return nil
}
