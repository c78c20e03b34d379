package entity

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListQuery describes a paginated, optionally filtered listing.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// Normalize clamps page and limit into their valid ranges.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}

	return q
}

// Offset returns the number of items skipped before the page.
func (q ListQuery) Offset() int {
	n := q.Normalize()

	return (n.Page - 1) * n.Limit
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Pages returns the number of pages needed to show Total items.
func (p Page[T]) Pages() int {
	if p.Limit <= 0 {
		return 0
	}

	return (p.Total + p.Limit - 1) / p.Limit
}
