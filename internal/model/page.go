package model

// Pagination mirrors the server's pagination block and is passed through
// untouched.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// HasNext reports whether another page follows the current one.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

type Page[T any] struct {
	Data       []T
	Pagination Pagination
}
