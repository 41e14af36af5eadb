// Package validation holds input checks shared by the service layer and the
// interactive prompts. Validators take strings so they can be passed straight
// to huh input fields.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PIN requires exactly 4 decimal digits.
func PIN(pin string) error {
	if len(pin) != 4 || !isDigits(pin) {
		return fmt.Errorf("PIN must be exactly 4 digits")
	}
	return nil
}

// AccountNumber requires exactly 5 decimal digits.
func AccountNumber(number string) error {
	if len(number) != 5 || !isDigits(number) {
		return fmt.Errorf("account number must be exactly 5 digits")
	}
	return nil
}

// HolderName requires a non-empty name free of the account file delimiters.
func HolderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if strings.ContainsAny(name, "|#") {
		return fmt.Errorf("name cannot contain '|' or '#' characters")
	}
	return nil
}

// Amount requires a parseable number greater than zero.
func Amount(input string) error {
	amount, err := ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// InitialBalance requires a parseable number that is not negative.
func InitialBalance(input string) error {
	amount, err := ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ParseAmount converts user input into a two-decimal amount. Extra decimal
// places are rejected rather than silently rounded.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("please enter a valid numeric amount")
	}
	if amount.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("amounts use at most two decimal places")
	}
	return amount, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
