package views

import (
	"github.com/pterm/pterm"

	"github.com/okanite/minibank/internal/model"
)

// RenderHistory prints one account's transaction history, oldest first.
func RenderHistory(acc *model.Account, entries []string) {
	pterm.DefaultSection.Printfln("Transaction History - %s (%s)", acc.HolderName, acc.Number)

	if len(entries) == 0 {
		pterm.Info.Println("No transactions yet.")
		return
	}

	items := make([]pterm.BulletListItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, pterm.BulletListItem{Level: 0, Text: entry})
	}
	pterm.DefaultBulletList.WithItems(items).Render()
}

// RenderLedgerLine prints one raw line of the durable transaction log.
func RenderLedgerLine(line string) {
	pterm.Println(line)
}
