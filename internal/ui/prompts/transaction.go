package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/validation"
)

// TransactionChoices are the lists the transaction form picks from.
type TransactionChoices struct {
	Accounts   []model.Account
	Categories []model.Category
	Currencies []model.Currency
}

// PromptTransactionKind asks for the transaction type and switches form to
// it. Values already entered are kept.
func PromptTransactionKind(form *service.TransactionForm) error {
	kind := form.Kind

	err := huh.NewSelect[model.TransactionKind]().
		Title("Choose the transaction type:").
		Options(KindOptions()...).
		Value(&kind).
		Run()
	if err != nil {
		return err
	}

	return form.SetKind(kind)
}

// PromptTransactionForm fills form in place. Source and destination are an
// account selector or a free-text field depending on form.Layout().
func PromptTransactionForm(form *service.TransactionForm, choices TransactionChoices) error {
	if len(choices.Accounts) == 0 {
		return errors.New("no asset accounts available, create one first")
	}

	layout := form.Layout()
	srcLabel, destLabel := ui.EndpointLabels(form.Kind)
	accounts := AccountOptions(choices.Accounts)

	fields := []huh.Field{
		huh.NewInput().
			Title("Description:").
			Value(&form.Description).
			Validate(validation.Required("description")),
		huh.NewInput().
			Title("Amount:").
			Value(&form.Amount).
			Validate(validation.ValidateAmount),
		huh.NewInput().
			Title("Date (YYYY-MM-DD):").
			Value(&form.Date).
			Validate(validation.ValidateDate),
		endpointField(srcLabel, layout.Source, &form.SourceID, &form.SourceName, accounts),
		endpointField(destLabel, layout.Destination, &form.DestinationID, &form.DestinationName, accounts),
		huh.NewSelect[string]().
			Title("Category:").
			Options(CategoryOptions(choices.Categories)...).
			Value(&form.CategoryID).
			Height(selectHeight(len(choices.Categories) + 1)),
	}

	if currencies := CurrencyOptions(choices.Currencies); len(currencies) > 0 {
		if form.CurrencyCode == "" {
			if def, ok := model.DefaultCurrency(choices.Currencies); ok {
				form.CurrencyCode = def.Code
			}
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Currency:").
			Options(currencies...).
			Value(&form.CurrencyCode).
			Height(selectHeight(len(currencies))))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func endpointField(label string, input service.EndpointInput, id, name *string, accounts []huh.Option[string]) huh.Field {
	if input == service.InputAccount {
		return huh.NewSelect[string]().
			Title(label + ":").
			Options(accounts...).
			Value(id).
			Height(selectHeight(len(accounts)))
	}

	return huh.NewInput().
		Title(label + ":").
		Value(name).
		Validate(validation.Required(label))
}
