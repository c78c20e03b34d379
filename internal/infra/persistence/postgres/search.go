package postgres

import (
	"strings"

	"painel/internal/domain/entity"

	"gorm.io/gorm"
)

// paginate applies a case-insensitive search over columns plus offset and limit.
// It returns the page query and a separate count query.
func paginate(db *gorm.DB, query entity.ListQuery, columns ...string) (*gorm.DB, *gorm.DB) {
	query = query.Normalize()

	if term := strings.TrimSpace(query.Search); term != "" {
		like := "%" + escapeLike(term) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, c+" ILIKE ?")
			args = append(args, like)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}

	count := db.Session(&gorm.Session{})
	page := db.Session(&gorm.Session{}).Offset(query.Offset()).Limit(query.Limit)

	return page, count
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
