package model

// Category is a spending category. The server has no icon attribute, so the
// icon identifier lives in Notes.
type Category struct {
	ID    string
	Name  string
	Notes string
}

func (c Category) Icon() Icon {
	return ParseIcon(c.Notes)
}
