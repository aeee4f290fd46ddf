package helpers

import "math"

const (
	DefaultPageLimit int64 = 10
	MaxPageLimit     int64 = 100
)

// NormalizePage clamps page and limit to usable values. Page is bounded so
// that Skip(page, limit) cannot overflow.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if maxPage := math.MaxInt64/limit + 1; page > maxPage {
		page = maxPage
	}
	return page, limit
}

func Skip(page, limit int64) int64 {
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
