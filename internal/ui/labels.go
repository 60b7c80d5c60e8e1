package ui

import "github.com/hance08/ffly/internal/model"

// EndpointLabels names the source and destination of a transaction kind.
func EndpointLabels(kind model.TransactionKind) (source, destination string) {
	switch kind {
	case model.KindDeposit:
		return "Payer", "To account"
	case model.KindTransfer:
		return "From account", "To account"
	default:
		return "From account", "Payee"
	}
}

// Counterparties returns the display names of a record's source and
// destination.
func Counterparties(tx model.Transaction) (source, destination string) {
	return orDash(tx.SourceName), orDash(tx.DestinationName)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
