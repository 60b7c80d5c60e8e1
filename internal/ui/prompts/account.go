package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/validation"
)

// PromptAccountForm fills in. On create the type and opening balance are
// asked; on edit the active flag is.
func PromptAccountForm(in *model.AccountInput, creating bool, currencies []model.Currency) error {
	fields := []huh.Field{
		huh.NewInput().
			Title("Account Name:").
			Value(&in.Name).
			Validate(validation.ValidateName),
	}

	if creating {
		if in.Type == "" {
			in.Type = model.AccountAsset
		}
		fields = append(fields, huh.NewSelect[model.AccountType]().
			Title("Account Type:").
			Options(AccountTypeOptions()...).
			Value(&in.Type))
	}

	if opts := CurrencyOptions(currencies); len(opts) > 0 {
		if in.CurrencyCode == "" {
			if def, ok := model.DefaultCurrency(currencies); ok {
				in.CurrencyCode = def.Code
			}
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Currency:").
			Options(opts...).
			Value(&in.CurrencyCode).
			Height(selectHeight(len(opts))))
	}

	if creating {
		fields = append(fields, huh.NewInput().
			Title("Opening Balance (press Enter for none):").
			Value(&in.OpeningBalance).
			Validate(validation.ValidateOpeningBalance))
	} else {
		fields = append(fields, huh.NewConfirm().
			Title("Active?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Active))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
