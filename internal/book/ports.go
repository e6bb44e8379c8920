package book

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no book matches the given identifier.
var ErrNotFound = errors.New("book not found")

// ErrNoContent is returned when a well-formed list or search query
// yields zero records for the requested page. Distinct from
// ErrNotFound: the resource exists, the window is just empty.
var ErrNoContent = errors.New("no matching books")

// Query defines filters and pagination for fetching books. Zero-value
// filter fields are not applied; supplied filters are combined with
// AND. Title and Author match as case-insensitive substrings, Year
// matches exactly.
type Query struct {
	Title  string
	Author string
	Year   *int
	Limit  int
	Offset int
}

// Filtered reports whether at least one filter criterion is supplied.
func (q Query) Filtered() bool {
	return q.Title != "" || q.Author != "" || q.Year != nil
}

// Repository defines the contract for book storage.
type Repository interface {
	// List returns books matching q ordered by id ascending, plus the
	// total count of matching records independent of the page window.
	List(ctx context.Context, q Query) ([]Book, int, error)
	// GetByID returns a single book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// Create persists a new book and returns it with the assigned id.
	Create(ctx context.Context, b Book) (Book, error)
	// Update applies the provided fields to an existing book inside a
	// transaction and returns the updated record, or ErrNotFound.
	Update(ctx context.Context, id int64, in UpdateInput) (Book, error)
	// Delete removes a book or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
