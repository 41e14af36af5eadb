package model

import "github.com/shopspring/decimal"

// Account holds a customer's balance and transaction history, keyed by a
// unique 5-digit account number. The history is append-only; entries are
// stored in the order the operations happened.
type Account struct {
	Number       string
	HolderName   string
	Balance      decimal.Decimal
	Transactions []string
}
