package book

import (
	"context"
)

// Filters carries the optional search criteria. Zero values mean
// "criterion not supplied".
type Filters struct {
	Title  string
	Author string
	Year   *int
}

// Page is one window of catalog records plus pagination metadata.
// Total counts every record matching the active filters, not just the
// records in this window.
type Page struct {
	Books []Book `json:"books"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int    `json:"total"`
}

// Service provides catalog business logic over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of the whole catalog ordered by id ascending.
// An empty page yields ErrNoContent. The limit is clamped to MaxLimit
// before the fetch, so the response metadata always matches the number
// of records a page can actually hold.
func (s *Service) List(ctx context.Context, page, limit int) (Page, error) {
	return s.paginate(ctx, Query{}, page, limit)
}

// Search returns one page of books matching the conjunction of the
// supplied filters. A search without any criteria is a miss by
// definition, not "return everything": it yields ErrNoContent without
// touching the store, as does a well-formed search with zero matches.
func (s *Service) Search(ctx context.Context, f Filters, page, limit int) (Page, error) {
	q := Query{Title: f.Title, Author: f.Author, Year: f.Year}
	if !q.Filtered() {
		return Page{}, ErrNoContent
	}
	return s.paginate(ctx, q, page, limit)
}

func (s *Service) paginate(ctx context.Context, q Query, page, limit int) (Page, error) {
	clamped := ClampLimit(limit, MaxLimit)
	q.Limit = clamped
	q.Offset = ComputeOffset(page, clamped)

	books, total, err := s.repo.List(ctx, q)
	if err != nil {
		return Page{}, err
	}
	if len(books) == 0 {
		return Page{}, ErrNoContent
	}
	return Page{Books: books, Page: page, Limit: clamped, Total: total}, nil
}

// Create persists a validated input and returns the stored record with
// its assigned identifier.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	return s.repo.Create(ctx, in.Record())
}

// Get returns a single book by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies only the fields present in the input; omitted fields
// keep their stored values. An update carrying no fields reduces to a
// read of the current record.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Book, error) {
	if in.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a book by id, or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
