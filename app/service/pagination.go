package service

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// clampPageLimit keeps query pagination inside sane bounds so the page
// math and the LIMIT/OFFSET queries never see zero or negative values.
func clampPageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
