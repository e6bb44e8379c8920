package book

import (
	"bytes"
	"fmt"
	"strconv"
)

// Year is a tri-state publication year: absent from the payload,
// explicitly null, or an integer value. Clients send it as a JSON
// number or a numeric string; 0, "0000"-style zeros, "" and null all
// normalize to "no year" before validation, matching the catalog's
// treatment of unknown publication dates.
type Year struct {
	Int   int
	Valid bool // a real year is present
	Set   bool // the field appeared in the payload at all
}

// YearOf builds a set, valid Year. Mostly useful in tests.
func YearOf(v int) Year {
	return Year{Int: v, Valid: true, Set: true}
}

// Ptr returns the year as a nullable pointer, nil when no year is set.
func (y Year) Ptr() *int {
	if !y.Valid {
		return nil
	}
	v := y.Int
	return &v
}

// UnmarshalJSON accepts null, a number, or a numeric string.
// It is only invoked when the field is present, so Set is always
// true afterwards; an absent field leaves the zero value.
func (y *Year) UnmarshalJSON(data []byte) error {
	y.Set = true
	y.Valid = false
	y.Int = 0

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("year must be an integer: %w", err)
	}
	if v == 0 {
		return nil
	}

	y.Int = v
	y.Valid = true
	return nil
}

// MarshalJSON renders the year as a number or null.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.Int)), nil
}
