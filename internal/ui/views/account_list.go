package views

import (
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Type", "Balance", "Active"}}

	for _, acc := range accounts {
		balance := utils.FormatMoney(acc.CurrencySymbol, acc.CurrentBalance)

		var coloredName, coloredBalance string
		switch acc.Type {
		case model.AccountAsset, model.AccountRevenue:
			coloredName = pterm.Green(acc.Name)
			coloredBalance = pterm.Green(balance)
		case model.AccountLiability, model.AccountExpense:
			coloredName = pterm.Red(acc.Name)
			coloredBalance = pterm.Red(balance)
		default:
			coloredName = acc.Name
			coloredBalance = balance
		}

		active := pterm.Green("Yes")
		if !acc.Active {
			active = pterm.Gray("No")
		}

		tableData = append(tableData, []string{acc.ID, coloredName, acc.Type.Label(), coloredBalance, active})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}

func RenderAccountSummary(acc model.Account) error {
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), acc.Type.Label()},
		{pterm.Blue("Currency"), acc.CurrencyCode},
		{pterm.Blue("Balance"), utils.FormatMoney(acc.CurrencySymbol, acc.CurrentBalance)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
