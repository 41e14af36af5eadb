package cmd

import (
	"errors"

	"github.com/pterm/pterm"

	"github.com/okanite/minibank/internal/service"
	"github.com/okanite/minibank/internal/ui"
	"github.com/okanite/minibank/internal/ui/prompts"
)

const (
	menuAdminLogin    = "Admin Login"
	menuCustomerLogin = "Customer Login"
	menuExit          = "Exit"
)

var errTooManyAttempts = errors.New("too many failed login attempts")

// runSession is the top-level interactive loop: pick a role, log in, work in
// the role menu, come back here on logout. Exiting the loop flushes the
// account store through the app cleanup.
func runSession(svc *service.Service) error {
	ui.PrintTitle("Welcome to the Mini Banking App")

	for {
		choice, err := prompts.PromptSelect("Main Menu", []string{
			menuAdminLogin,
			menuCustomerLogin,
			menuExit,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuAdminLogin:
			if err := runAdminLogin(svc); err != nil {
				if errors.Is(err, errTooManyAttempts) {
					// The attempt limit ends the whole session, not just
					// the login prompt.
					pterm.Error.Println("Too many failed attempts. Exiting.")
					return nil
				}
				return err
			}

		case menuCustomerLogin:
			if err := runCustomerLogin(svc); err != nil {
				return err
			}

		case menuExit:
			pterm.Info.Println("Thank you for using the Mini Banking App. Goodbye!")
			return nil
		}
	}
}
