package http

import (
	"fmt"
	"reflect"
	"strings"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Expose the tri-state Year to the validator as a plain int (or
	// nil when unset) so gte/lte tags apply to the underlying value.
	validate.RegisterCustomTypeFunc(yearValuer, book.Year{})
}

func yearValuer(field reflect.Value) interface{} {
	if y, ok := field.Interface().(book.Year); ok {
		if !y.Valid {
			return nil
		}
		return y.Int
	}
	return nil
}

// ValidateStruct runs validator tags over s and renders failures as
// field-level details for the error envelope. Nil means valid.
func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be less than or equal to %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
