package model

type TransactionKind string

const (
	KindWithdrawal TransactionKind = "withdrawal"
	KindDeposit    TransactionKind = "deposit"
	KindTransfer   TransactionKind = "transfer"
)

var TransactionKinds = []TransactionKind{KindWithdrawal, KindDeposit, KindTransfer}

func (k TransactionKind) Valid() bool {
	switch k {
	case KindWithdrawal, KindDeposit, KindTransfer:
		return true
	}
	return false
}

func (k TransactionKind) Label() string {
	switch k {
	case KindWithdrawal:
		return "Withdrawal"
	case KindDeposit:
		return "Deposit"
	case KindTransfer:
		return "Transfer"
	default:
		return string(k)
	}
}

// Transaction is the flattened, one-leg view of a transaction group.
//
// Per kind, only one of SourceID/SourceName and one of
// DestinationID/DestinationName is meaningful:
//
//	withdrawal: SourceID, DestinationName
//	deposit:    SourceName, DestinationID
//	transfer:   SourceID, DestinationID
type Transaction struct {
	ID              string
	CreatedAt       string
	Date            string
	Description     string
	Amount          string
	CurrencyCode    string
	CurrencySymbol  string
	Kind            TransactionKind
	SourceID        string
	SourceName      string
	DestinationID   string
	DestinationName string
	CategoryID      string
	CategoryName    string
}

// TransactionPayload is the single leg submitted inside a transaction group.
type TransactionPayload struct {
	Type            TransactionKind `json:"type"`
	Date            string          `json:"date"`
	Amount          string          `json:"amount"`
	Description     string          `json:"description"`
	CurrencyCode    string          `json:"currency_code,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	SourceID        string          `json:"source_id,omitempty"`
	SourceName      string          `json:"source_name,omitempty"`
	DestinationID   string          `json:"destination_id,omitempty"`
	DestinationName string          `json:"destination_name,omitempty"`
}
