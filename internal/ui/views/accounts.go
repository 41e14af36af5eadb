package views

import (
	"github.com/pterm/pterm"

	"github.com/okanite/minibank/internal/model"
)

// RenderAccountList prints every account as a table, in creation order.
func RenderAccountList(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Info.Println("No accounts to display.")
		return nil
	}

	tableData := pterm.TableData{{"Account No", "Holder", "Balance"}}
	for _, acc := range accounts {
		tableData = append(tableData, []string{
			acc.Number,
			acc.HolderName,
			acc.Balance.StringFixed(2),
		})
	}

	pterm.DefaultSection.Println("List of All Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("Total: %d accounts", len(accounts))
	return nil
}
