package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

// IsInterrupt reports whether err comes from the user cancelling a prompt
// (Ctrl+C / Esc) rather than from a real failure. Cancellation ends the
// session cleanly instead of being reported as an error.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}
