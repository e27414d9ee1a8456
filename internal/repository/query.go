package repository

import "gorm.io/gorm"

const (
	// DefaultPage is the first page of a listing (pages are 1-indexed).
	DefaultPage = 1
	// DefaultLimit is the page size applied when the caller supplies none.
	DefaultLimit = 10

	maxLimit = 100
)

// PostQuery describes a filtered, paginated post listing. Construct it with
// NewPostQuery so page and limit are always clamped before the offset is
// computed.
type PostQuery struct {
	Page   int
	Limit  int
	Search string
	Tag    string
}

// NewPostQuery clamps page and limit into valid ranges. A page or limit of
// zero or below falls back to the defaults so the offset can never underflow
// into out-of-range rows.
func NewPostQuery(page, limit int, search, tag string) PostQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return PostQuery{
		Page:   page,
		Limit:  limit,
		Search: search,
		Tag:    tag,
	}
}

// Offset returns the row offset of the first result.
func (q PostQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// apply chains the filter, limit, and offset clauses onto db. Filters are
// ANDed substring predicates and always parameterized; the fragment is never
// interpolated into the query text.
func (q PostQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Search != "" {
		db = db.Where("title LIKE ?", "%"+q.Search+"%")
	}
	if q.Tag != "" {
		db = db.Where("tags LIKE ?", "%"+q.Tag+"%")
	}
	return db.Limit(q.Limit).Offset(q.Offset())
}
