package helper

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug turns a free-form title into a URL-safe slug.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "event"
	}
	return s
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free in the given
// table/column scope. Extra args are appended to the WHERE clause, e.g. to
// scope uniqueness per institution.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string, scopeQuery string, scopeArgs ...any) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		q := db.Table(table).Where(column+" = ?", slug)
		if scopeQuery != "" {
			q = q.Where(scopeQuery, scopeArgs...)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
