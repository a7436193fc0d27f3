package entity

// Pagination constants
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a limit/offset window over a list
type Page struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Normalize applies the default and maximum page sizes
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
