package service

import (
	"fmt"
	"time"

	"github.com/hance08/ffly/internal/constants"
	"github.com/hance08/ffly/internal/model"
)

// EndpointInput says how a source or destination is entered.
type EndpointInput int

const (
	// InputAccount is a selector over the user's asset accounts (an id).
	InputAccount EndpointInput = iota
	// InputText is a free-text payer or payee name.
	InputText
)

// FormLayout tells the presentation layer which widgets to show.
type FormLayout struct {
	Source      EndpointInput
	Destination EndpointInput
}

// LayoutFor returns the source/destination layout of a transaction kind.
func LayoutFor(kind model.TransactionKind) FormLayout {
	switch kind {
	case model.KindDeposit:
		return FormLayout{Source: InputText, Destination: InputAccount}
	case model.KindTransfer:
		return FormLayout{Source: InputAccount, Destination: InputAccount}
	default:
		return FormLayout{Source: InputAccount, Destination: InputText}
	}
}

// TransactionForm holds the state of the create/edit transaction form and
// builds the request payload. It does not validate; required fields are
// enforced where the values are entered.
type TransactionForm struct {
	Kind         model.TransactionKind
	Description  string
	Amount       string
	Date         string
	CategoryID   string
	CurrencyCode string

	SourceID        string
	SourceName      string
	DestinationID   string
	DestinationName string
}

// NewTransactionForm returns a blank withdrawal dated today.
func NewTransactionForm(today time.Time) *TransactionForm {
	return &TransactionForm{
		Kind: model.KindWithdrawal,
		Date: today.Format(constants.DateFormat),
	}
}

// TransactionFormFromRecord pre-populates the form from an existing record.
// Only the source/destination fields that belong to the record's kind are
// copied.
func TransactionFormFromRecord(tx model.Transaction) *TransactionForm {
	f := &TransactionForm{
		Kind:         tx.Kind,
		Description:  tx.Description,
		Amount:       tx.Amount,
		Date:         dayOf(tx.Date),
		CategoryID:   tx.CategoryID,
		CurrencyCode: tx.CurrencyCode,
	}

	switch tx.Kind {
	case model.KindWithdrawal:
		f.SourceID = tx.SourceID
		f.DestinationName = tx.DestinationName
	case model.KindDeposit:
		f.SourceName = tx.SourceName
		f.DestinationID = tx.DestinationID
	default:
		f.SourceID = tx.SourceID
		f.DestinationID = tx.DestinationID
	}
	return f
}

// SetKind switches the form to another kind. Entered values are kept as they
// are; nothing is cleared or re-checked.
func (f *TransactionForm) SetKind(kind model.TransactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown transaction type: %s", kind)
	}
	f.Kind = kind
	return nil
}

func (f *TransactionForm) Layout() FormLayout {
	return LayoutFor(f.Kind)
}

// SetSource stores v as an account id or a payer name, whichever the current
// kind takes.
func (f *TransactionForm) SetSource(v string) {
	if f.Layout().Source == InputAccount {
		f.SourceID = v
	} else {
		f.SourceName = v
	}
}

// SetDestination stores v as an account id or a payee name, whichever the
// current kind takes.
func (f *TransactionForm) SetDestination(v string) {
	if f.Layout().Destination == InputAccount {
		f.DestinationID = v
	} else {
		f.DestinationName = v
	}
}

// Source returns the value the current kind reads for the source.
func (f *TransactionForm) Source() string {
	if f.Layout().Source == InputAccount {
		return f.SourceID
	}
	return f.SourceName
}

// Destination returns the value the current kind reads for the destination.
func (f *TransactionForm) Destination() string {
	if f.Layout().Destination == InputAccount {
		return f.DestinationID
	}
	return f.DestinationName
}

// Payload builds the single-leg request for the current kind:
//
//	withdrawal: source_id + destination_name
//	deposit:    source_name + destination_id
//	transfer:   source_id + destination_id
func (f *TransactionForm) Payload() model.TransactionPayload {
	p := model.TransactionPayload{
		Type:         f.Kind,
		Date:         f.Date,
		Amount:       f.Amount,
		Description:  f.Description,
		CurrencyCode: f.CurrencyCode,
		CategoryID:   f.CategoryID,
	}

	switch f.Kind {
	case model.KindWithdrawal:
		p.SourceID = f.SourceID
		p.DestinationName = f.DestinationName
	case model.KindDeposit:
		p.SourceName = f.SourceName
		p.DestinationID = f.DestinationID
	case model.KindTransfer:
		p.SourceID = f.SourceID
		p.DestinationID = f.DestinationID
	}
	return p
}

func dayOf(date string) string {
	if len(date) >= len(constants.DateFormat) {
		if _, err := time.Parse(constants.DateFormat, date[:len(constants.DateFormat)]); err == nil {
			return date[:len(constants.DateFormat)]
		}
	}
	return date
}
