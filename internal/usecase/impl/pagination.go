package impl

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps offset pagination parameters to sane bounds.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
