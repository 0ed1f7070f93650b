package entity

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page exists after this one.
func (p Pagination) HasNext() bool {
	return p.TotalPages > 0 && p.Page < p.TotalPages
}
