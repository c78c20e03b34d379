package memory

import (
	"strings"

	"painel/internal/domain/entity"
)

// matches reports whether any field contains the search term, ignoring case.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

// window returns the slice bounds of the page described by query over total items.
func window(query entity.ListQuery, total int) (int, int) {
	query = query.Normalize()

	start := min(query.Offset(), total)
	end := min(start+query.Limit, total)

	return start, end
}
