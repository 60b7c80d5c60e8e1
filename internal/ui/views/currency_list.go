package views

import (
	"fmt"

	"github.com/hance08/ffly/internal/model"
	"github.com/pterm/pterm"
)

func RenderCurrencyList(currencies []model.Currency) error {
	if len(currencies) == 0 {
		pterm.Warning.Println("No currencies found")
		return nil
	}

	tableData := pterm.TableData{{"Code", "Name", "Symbol", "Decimals", "Status"}}
	for _, c := range currencies {
		status := pterm.Gray("Disabled")
		if c.Enabled {
			status = pterm.Green("Enabled")
		}
		if c.Default {
			status += pterm.Cyan(" (default)")
		}
		tableData = append(tableData, []string{c.Code, c.Name, c.Symbol, fmt.Sprint(c.DecimalPlaces), status})
	}

	pterm.DefaultSection.Printf("Currency List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d currencies\n", len(currencies))
	return nil
}
