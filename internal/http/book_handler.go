package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
)

type BookHandler struct {
	svc *book.Service
}

func NewBookHandler(svc *book.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

// Register mounts the /books surface on mux.
func (h *BookHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/search", h.Search)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// parsePagination reads page and limit query parameters, applying the
// documented defaults and bounds. Out-of-range values are reported as
// validation details rather than silently corrected.
func parsePagination(r *http.Request) (page, limit int, details []httpx.ErrorDetail) {
	query := r.URL.Query()

	page = book.DefaultPage
	if raw := query.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			details = append(details, httpx.ErrorDetail{
				Field:   "page",
				Message: "page must be an integer greater than or equal to 1",
			})
		} else {
			page = v
		}
	}

	limit = book.DefaultLimit
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > book.MaxLimit {
			details = append(details, httpx.ErrorDetail{
				Field:   "limit",
				Message: "limit must be an integer between 1 and 25",
			})
		} else {
			limit = v
		}
	}

	return page, limit, details
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// List handles GET /books
// @Summary List books
// @Description Get one page of the catalog ordered by id
// @Tags books
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (1-25)" default(10)
// @Success 200 {object} book.Page
// @Failure 204 "Empty page"
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, details := parsePagination(r)
	if details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pagination parameters", details)
		return
	}

	result, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		if errors.Is(err, book.ErrNoContent) {
			httpx.NoContent(w)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}

// Search handles GET /books/search
// @Summary Search books
// @Description Search by title/author substring and exact year; all supplied filters must match
// @Tags books
// @Produce json
// @Param search_by_title query string false "Title substring, case-insensitive"
// @Param search_by_author query string false "Author substring, case-insensitive"
// @Param search_by_year query int false "Exact publication year (0-2030)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (1-25)" default(10)
// @Success 200 {object} book.Page
// @Failure 204 "No filters or no matches"
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, limit, details := parsePagination(r)
	query := r.URL.Query()

	filters := book.Filters{
		Title:  query.Get("search_by_title"),
		Author: query.Get("search_by_author"),
	}
	if query.Has("search_by_title") && filters.Title == "" {
		details = append(details, httpx.ErrorDetail{
			Field:   "search_by_title",
			Message: "search_by_title must not be empty",
		})
	}
	if query.Has("search_by_author") && filters.Author == "" {
		details = append(details, httpx.ErrorDetail{
			Field:   "search_by_author",
			Message: "search_by_author must not be empty",
		})
	}
	if raw := query.Get("search_by_year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 2030 {
			details = append(details, httpx.ErrorDetail{
				Field:   "search_by_year",
				Message: "search_by_year must be an integer between 0 and 2030",
			})
		} else {
			filters.Year = &v
		}
	}

	if details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters", details)
		return
	}

	result, err := h.svc.Search(r.Context(), filters, page, limit)
	if err != nil {
		if errors.Is(err, book.ErrNoContent) {
			httpx.NoContent(w)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}

// Get handles GET /books/{id}
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Book id must be an integer greater than or equal to 1", nil)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body book.CreateInput true "Book fields"
// @Success 201 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in book.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(in); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book fields", details)
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}

// Update handles PUT /books/{id}
// @Summary Update a book
// @Description Partial update: only fields present in the body change
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body book.UpdateInput true "Fields to change"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Book id must be an integer greater than or equal to 1", nil)
		return
	}

	var in book.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(in); details != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book fields", details)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204 "Deleted"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Book id must be an integer greater than or equal to 1", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.NoContent(w)
}
