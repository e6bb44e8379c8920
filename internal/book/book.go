package book

// Book represents a catalog record.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year"`
}

// CreateInput holds the fields a client supplies when creating a book.
type CreateInput struct {
	Title  string `json:"title" validate:"required,min=1,max=255"`
	Author string `json:"author" validate:"required,min=1,max=255"`
	Year   Year   `json:"year" validate:"omitempty,gte=0,lte=2030"`
}

// UpdateInput holds the fields a client may supply when partially
// updating a book. Title and Author are pointers so "not provided"
// (nil) can be told apart from an explicit value; Year carries its own
// set/unset state. Only provided fields are applied.
type UpdateInput struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=255"`
	Author *string `json:"author" validate:"omitempty,min=1,max=255"`
	Year   Year    `json:"year" validate:"omitempty,gte=0,lte=2030"`
}

// Empty reports whether the update carries no fields at all.
func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.Author == nil && !in.Year.Set
}

// Record builds the persisted Book for a validated create input.
func (in CreateInput) Record() Book {
	return Book{
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year.Ptr(),
	}
}
