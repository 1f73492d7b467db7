// internal/domain/pagination/envelope.go
package pagination

// Envelope is the uniform page wrapper returned by every list endpoint,
// for credential records and logs alike.
type Envelope[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Query is the pagination part of a list request. Filters are layered on
// per entity.
type Query struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Clamp fills in defaults for missing or nonsensical values.
func (q *Query) Clamp() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

// Normalize defaults any field the backend omitted so the client never
// observes undefined pagination state: items is never nil, page/limit fall
// back to the requested values, total_pages to 1, the booleans to false.
func (e *Envelope[T]) Normalize(page, limit int) {
	if e.Items == nil {
		e.Items = []T{}
	}
	if e.Total < 0 {
		e.Total = 0
	}
	if e.Page == 0 {
		e.Page = page
	}
	if e.Limit == 0 {
		e.Limit = limit
	}
	if e.TotalPages == 0 {
		e.TotalPages = 1
	}
}
