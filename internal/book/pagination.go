package book

// Pagination defaults and bounds for the /books surface.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 25
)

// ComputeOffset returns the number of records to skip before the
// requested page begins. Callers guarantee page and limit are >= 1.
func ComputeOffset(page, limit int) int {
	return (page - 1) * limit
}

// ClampLimit constrains limit to at most max, leaving smaller values
// unchanged.
func ClampLimit(limit, max int) int {
	if limit > max {
		return max
	}
	return limit
}
