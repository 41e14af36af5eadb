package prompts

import (
	"github.com/pterm/pterm"

	"github.com/okanite/minibank/internal/validation"
)

// PromptAccountNumber asks for a 5-digit account number.
func PromptAccountNumber() (string, error) {
	return PromptInput("Account number:", validation.AccountNumber)
}

// PromptPIN asks for an existing 4-digit PIN with masked echo.
func PromptPIN() (string, error) {
	return PromptSecret("4-digit PIN:", validation.PIN)
}

// PromptNewPIN asks for a fresh PIN and a confirmation, re-prompting until
// the two entries match.
func PromptNewPIN() (string, error) {
	for {
		pin, err := PromptSecret("Create a 4-digit PIN:", validation.PIN)
		if err != nil {
			return "", err
		}

		confirm, err := PromptSecret("Confirm your PIN:", validation.PIN)
		if err != nil {
			return "", err
		}

		if pin == confirm {
			return pin, nil
		}
		pterm.Warning.Println("PINs do not match. Try again.")
	}
}

// PromptHolderName asks for the account holder's name.
func PromptHolderName() (string, error) {
	return PromptInput("Account holder's name:", validation.HolderName)
}

// PromptAmount asks for a positive two-decimal amount.
func PromptAmount(message string) (string, error) {
	return PromptInput(message, validation.Amount)
}

// PromptInitialBalance asks for a non-negative opening amount.
func PromptInitialBalance() (string, error) {
	return PromptInput("Initial deposit amount:", validation.InitialBalance)
}

// PromptAdminCredentials asks for the admin username and password.
func PromptAdminCredentials() (username, password string, err error) {
	username, err = PromptInput("Admin username:", nil)
	if err != nil {
		return "", "", err
	}

	password, err = PromptSecret("Admin password:", nil)
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}
