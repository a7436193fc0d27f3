package dto

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

// NewListResponse builds a list response; HasMore is true when the page is full
func NewListResponse[T any](data []T, limit, offset int) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data: data,
		Pagination: PaginationInfo{
			Limit:   limit,
			Offset:  offset,
			Count:   len(data),
			HasMore: limit > 0 && len(data) == limit,
		},
	}
}
