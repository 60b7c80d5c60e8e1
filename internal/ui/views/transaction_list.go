package views

import (
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints one page of transactions with its page position.
func (v *TransactionListView) Render(page model.Page[model.Transaction]) error {
	if len(page.Data) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Transactions")
	if err := renderTransactionTable(page.Data); err != nil {
		return err
	}

	p := page.Pagination
	if p.TotalPages > 0 {
		pterm.Info.Printf("Page %d of %d (%d transactions)\n", p.CurrentPage, p.TotalPages, p.Total)
	} else {
		pterm.Info.Printf("Total: %d transactions\n", len(page.Data))
	}
	return nil
}

func renderTransactionTable(txs []model.Transaction) error {
	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Description", "From", "To", "Category", "Amount"},
	}

	for _, tx := range txs {
		src, dest := ui.Counterparties(tx)
		amount := utils.FormatMoney(tx.CurrencySymbol, tx.Amount)
		kind := tx.Kind.Label()

		switch tx.Kind {
		case model.KindWithdrawal:
			kind = pterm.Red(kind)
			amount = pterm.Red(amount)
		case model.KindDeposit:
			kind = pterm.Green(kind)
			amount = pterm.Green(amount)
		case model.KindTransfer:
			kind = pterm.Blue(kind)
			amount = pterm.Blue(amount)
		}

		tableData = append(tableData, []string{
			tx.ID,
			DisplayDate(tx.Date),
			kind,
			tx.Description,
			src,
			dest,
			orNone(tx.CategoryName),
			amount,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// DisplayDate shows the calendar day of a server timestamp.
func DisplayDate(date string) string {
	if len(date) >= len(model.DateLayout) {
		return date[:len(model.DateLayout)]
	}
	return date
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
