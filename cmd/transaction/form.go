package transaction

import (
	"fmt"

	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/hance08/ffly/internal/validation"
	"github.com/spf13/cobra"
)

type formFlags struct {
	Type     string
	Desc     string
	Amount   string
	Date     string
	From     string
	To       string
	Category string
	Currency string
}

func addFormFlags(cmd *cobra.Command, flags *formFlags) {
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "withdrawal, deposit or transfer")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.From, "from", "f", "", "Source: asset account id/name, or payer name for a deposit")
	cmd.Flags().StringVar(&flags.To, "to", "", "Destination: asset account id/name, or payee name for a withdrawal")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Category id or name")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code")
}

func formFlagsUsed(cmd *cobra.Command) bool {
	for _, name := range []string{"type", "desc", "amount", "date", "from", "to", "category", "currency"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyFlags overlays the flags that were set onto form. Account endpoints
// are resolved against choices; name endpoints are taken as typed.
func applyFlags(cmd *cobra.Command, flags *formFlags, form *service.TransactionForm, choices prompts.TransactionChoices) error {
	changed := cmd.Flags().Changed

	if changed("type") {
		if err := form.SetKind(model.TransactionKind(flags.Type)); err != nil {
			return err
		}
	}
	if changed("desc") {
		form.Description = flags.Desc
	}
	if changed("amount") {
		form.Amount = flags.Amount
	}
	if changed("date") {
		form.Date = flags.Date
	}
	if changed("currency") {
		form.CurrencyCode = flags.Currency
	}

	if changed("from") {
		v, err := resolveEndpoint(flags.From, form.Layout().Source, choices.Accounts)
		if err != nil {
			return err
		}
		form.SetSource(v)
	}
	if changed("to") {
		v, err := resolveEndpoint(flags.To, form.Layout().Destination, choices.Accounts)
		if err != nil {
			return err
		}
		form.SetDestination(v)
	}

	if changed("category") {
		id, err := resolveCategory(flags.Category, choices.Categories)
		if err != nil {
			return err
		}
		form.CategoryID = id
	}

	return checkForm(form)
}

func resolveEndpoint(ref string, input service.EndpointInput, accounts []model.Account) (string, error) {
	if input == service.InputText {
		return ref, nil
	}
	acc, ok := service.FindAccount(accounts, ref)
	if !ok {
		return "", fmt.Errorf("asset account %q not found", ref)
	}
	return acc.ID, nil
}

func resolveCategory(ref string, categories []model.Category) (string, error) {
	if ref == "" {
		return "", nil
	}
	for _, c := range categories {
		if c.ID == ref || c.Name == ref {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category %q not found", ref)
}

// checkForm runs the same checks the interactive form runs on its fields.
func checkForm(form *service.TransactionForm) error {
	srcLabel, destLabel := ui.EndpointLabels(form.Kind)
	checks := []error{
		validation.Required("description")(form.Description),
		validation.ValidateAmount(form.Amount),
		validation.ValidateDate(form.Date),
		validation.Required(srcLabel)(form.Source()),
		validation.Required(destLabel)(form.Destination()),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
