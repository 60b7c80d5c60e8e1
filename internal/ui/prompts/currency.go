package prompts

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/validation"
)

func PromptCurrencyForm(in *model.CurrencyInput) error {
	places := strconv.Itoa(in.DecimalPlaces)

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Currency Code (ISO 4217):").
			Value(&in.Code).
			Validate(validation.ValidateCurrencyCode),
		huh.NewInput().
			Title("Name:").
			Value(&in.Name).
			Validate(validation.Required("name")),
		huh.NewInput().
			Title("Symbol:").
			Value(&in.Symbol).
			Validate(validation.Required("symbol")),
		huh.NewInput().
			Title("Decimal Places:").
			Value(&places).
			Validate(validation.ValidateDecimalPlaces),
	)).Run()
	if err != nil {
		return err
	}

	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.DecimalPlaces, _ = strconv.Atoi(strings.TrimSpace(places))
	return nil
}
