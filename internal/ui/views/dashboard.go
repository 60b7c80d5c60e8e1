package views

import (
	"fmt"
	"strings"

	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/utils"
	"github.com/pterm/pterm"
)

func RenderDashboard(m model.DashboardMetrics, recent []model.Transaction) error {
	ui.PrintL1Title("Dashboard  %s", m.Period)
	pterm.Println()

	if m.MixedCurrencies() {
		pterm.Warning.Printf("Totals mix several currencies (%s) and are not converted\n", strings.Join(m.Currencies, ", "))
	}

	cards := pterm.TableData{
		{pterm.Blue("Net Worth"), utils.FormatDecimal(m.NetWorth)},
		{pterm.Green("Income"), utils.FormatDecimal(m.Income)},
		{pterm.Red("Expenses"), utils.FormatDecimal(m.Expenses)},
	}
	if err := pterm.DefaultTable.WithData(cards).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.WithLevel(2).Println("Top Categories")
	if len(m.TopCategories) == 0 {
		pterm.Info.Println("No categorized expenses in this period")
	} else {
		top := pterm.TableData{{"#", "Category", "Spent"}}
		for i, c := range m.TopCategories {
			top = append(top, []string{fmt.Sprint(i + 1), c.Name, utils.FormatDecimal(c.Amount)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(top).Render(); err != nil {
			return err
		}
	}

	pterm.DefaultSection.WithLevel(2).Println("Recent Transactions")
	if len(recent) == 0 {
		pterm.Info.Println("No transactions yet")
		return nil
	}
	return renderTransactionTable(recent)
}
