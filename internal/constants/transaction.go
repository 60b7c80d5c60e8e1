package constants

const (
	// Date Layout
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
)
