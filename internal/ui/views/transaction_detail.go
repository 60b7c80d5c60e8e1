package views

import (
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx model.Transaction) error {
	srcLabel, destLabel := ui.EndpointLabels(tx.Kind)
	src, dest := ui.Counterparties(tx)

	pterm.Println()
	ui.PrintL2Title("Transaction #%s", tx.ID)
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Type", tx.Kind.Label()},
		{"Date", DisplayDate(tx.Date)},
		{"Description", tx.Description},
		{"Amount", utils.FormatMoney(tx.CurrencySymbol, tx.Amount)},
		{"Currency", orNone(tx.CurrencyCode)},
		{srcLabel, src},
		{destLabel, dest},
		{"Category", orNone(tx.CategoryName)},
		{"Created", DisplayDate(tx.CreatedAt)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

// RenderTransactionDeletePreview shows what is about to be deleted.
func RenderTransactionDeletePreview(tx model.Transaction) error {
	pterm.Warning.Printf("About to delete transaction #%s:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", DisplayDate(tx.Date)},
		{"Description", tx.Description},
		{"Amount", utils.FormatMoney(tx.CurrencySymbol, tx.Amount)},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}
