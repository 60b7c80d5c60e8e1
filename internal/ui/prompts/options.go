package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/utils"
)

// noCategory is the option value for leaving the category empty.
const noCategory = ""

func KindOptions() []huh.Option[model.TransactionKind] {
	opts := make([]huh.Option[model.TransactionKind], 0, len(model.TransactionKinds))
	for _, k := range model.TransactionKinds {
		opts = append(opts, huh.NewOption(k.Label(), k))
	}
	return opts
}

func AccountTypeOptions() []huh.Option[model.AccountType] {
	opts := make([]huh.Option[model.AccountType], 0, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		opts = append(opts, huh.NewOption(t.Label(), t))
	}
	return opts
}

// AccountOptions labels each account with its balance; the value is the id.
func AccountOptions(accounts []model.Account) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(accounts))
	for _, acc := range accounts {
		label := fmt.Sprintf("%s (%s)", acc.Name, utils.FormatMoney(acc.CurrencySymbol, acc.CurrentBalance))
		opts = append(opts, huh.NewOption(label, acc.ID))
	}
	return opts
}

// CategoryOptions starts with a "no category" entry.
func CategoryOptions(categories []model.Category) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(categories)+1)
	opts = append(opts, huh.NewOption("(none)", noCategory))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", c.Icon().Glyph(), c.Name), c.ID))
	}
	return opts
}

// CurrencyOptions lists enabled currencies only.
func CurrencyOptions(currencies []model.Currency) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range currencies {
		if !c.Enabled {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s", c.Code, c.Name), c.Code))
	}
	return opts
}

func IconOptions() []huh.Option[model.Icon] {
	icons := model.Icons()
	opts := make([]huh.Option[model.Icon], 0, len(icons))
	for _, icon := range icons {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", icon.Glyph(), icon.Name()), icon))
	}
	return opts
}
