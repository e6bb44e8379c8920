package http

import (
	"testing"

	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_CreateInput(t *testing.T) {
	t.Run("valid without a year", func(t *testing.T) {
		in := book.CreateInput{Title: "Dune", Author: "Herbert"}
		assert.Nil(t, ValidateStruct(in))
	})

	t.Run("valid with a year", func(t *testing.T) {
		in := book.CreateInput{Title: "Dune", Author: "Herbert", Year: book.YearOf(1965)}
		assert.Nil(t, ValidateStruct(in))
	})

	t.Run("missing title and author", func(t *testing.T) {
		details := ValidateStruct(book.CreateInput{})
		require.Len(t, details, 2)
		assert.Equal(t, "title", details[0].Field)
		assert.Equal(t, "author", details[1].Field)
	})

	t.Run("negative year", func(t *testing.T) {
		in := book.CreateInput{Title: "Dune", Author: "Herbert", Year: book.YearOf(-5)}
		details := ValidateStruct(in)
		require.Len(t, details, 1)
		assert.Equal(t, "year", details[0].Field)
	})

	t.Run("year beyond 2030", func(t *testing.T) {
		in := book.CreateInput{Title: "Dune", Author: "Herbert", Year: book.YearOf(2031)}
		details := ValidateStruct(in)
		require.Len(t, details, 1)
		assert.Equal(t, "year", details[0].Field)
	})
}

func TestValidateStruct_UpdateInput(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(book.UpdateInput{}))
	})

	t.Run("explicit null year is valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(book.UpdateInput{Year: book.Year{Set: true}}))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		empty := ""
		details := ValidateStruct(book.UpdateInput{Title: &empty})
		require.Len(t, details, 1)
		assert.Equal(t, "title", details[0].Field)
	})

	t.Run("out of range year rejected", func(t *testing.T) {
		details := ValidateStruct(book.UpdateInput{Year: book.YearOf(5000)})
		require.Len(t, details, 1)
		assert.Equal(t, "year", details[0].Field)
	})
}
