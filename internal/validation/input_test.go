package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanite/minibank/internal/validation"
)

func TestPIN(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	for _, pin := range valid {
		assert.NoError(t, validation.PIN(pin), "pin %q", pin)
	}

	invalid := []string{"", "123", "12345", "12a4", "abcd", " 123", "12.4"}
	for _, pin := range invalid {
		assert.Error(t, validation.PIN(pin), "pin %q", pin)
	}
}

func TestAccountNumber(t *testing.T) {
	assert.NoError(t, validation.AccountNumber("10000"))
	assert.NoError(t, validation.AccountNumber("99999"))

	invalid := []string{"", "1234", "123456", "1000a", "10 00"}
	for _, n := range invalid {
		assert.Error(t, validation.AccountNumber(n), "number %q", n)
	}
}

func TestHolderName(t *testing.T) {
	assert.NoError(t, validation.HolderName("Asha"))
	assert.NoError(t, validation.HolderName("Chen Wei"))

	invalid := []string{"", "   ", "A|B", "A#B"}
	for _, name := range invalid {
		assert.Error(t, validation.HolderName(name), "name %q", name)
	}
}

func TestAmount(t *testing.T) {
	valid := []string{"1", "0.01", "150.50", " 20 "}
	for _, in := range valid {
		assert.NoError(t, validation.Amount(in), "input %q", in)
	}

	invalid := []string{"", "abc", "0", "-5", "-0.01", "1.234"}
	for _, in := range invalid {
		assert.Error(t, validation.Amount(in), "input %q", in)
	}
}

func TestInitialBalance(t *testing.T) {
	valid := []string{"0", "0.00", "100", "2500.50"}
	for _, in := range valid {
		assert.NoError(t, validation.InitialBalance(in), "input %q", in)
	}

	invalid := []string{"", "abc", "-1", "-0.01", "10.005"}
	for _, in := range invalid {
		assert.Error(t, validation.InitialBalance(in), "input %q", in)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := validation.ParseAmount("150.50")
	require.NoError(t, err)
	assert.Equal(t, "150.50", amount.StringFixed(2))

	amount, err = validation.ParseAmount("7")
	require.NoError(t, err)
	assert.Equal(t, "7.00", amount.StringFixed(2))

	// More than two decimal places is rejected, not rounded.
	_, err = validation.ParseAmount("1.005")
	require.Error(t, err)

	_, err = validation.ParseAmount("not a number")
	require.Error(t, err)
}
