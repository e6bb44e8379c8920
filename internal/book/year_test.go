package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYear_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Year Year `json:"year"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantInt   int
		wantErr   bool
	}{
		{"absent field", `{}`, false, false, 0, false},
		{"explicit null", `{"year": null}`, true, false, 0, false},
		{"number zero normalizes to null", `{"year": 0}`, true, false, 0, false},
		{"string zero normalizes to null", `{"year": "0"}`, true, false, 0, false},
		{"padded zero string normalizes to null", `{"year": "0000"}`, true, false, 0, false},
		{"empty string normalizes to null", `{"year": ""}`, true, false, 0, false},
		{"number value", `{"year": 1965}`, true, true, 1965, false},
		{"string value", `{"year": "1965"}`, true, true, 1965, false},
		{"negative value kept for validation", `{"year": -5}`, true, true, -5, false},
		{"non-numeric string rejected", `{"year": "soon"}`, false, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tt.body), &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, p.Year.Set)
			assert.Equal(t, tt.wantValid, p.Year.Valid)
			assert.Equal(t, tt.wantInt, p.Year.Int)
		})
	}
}

func TestYear_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(YearOf(1999))
	require.NoError(t, err)
	assert.Equal(t, "1999", string(b))

	b, err = json.Marshal(Year{Set: true})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestYear_Ptr(t *testing.T) {
	assert.Nil(t, Year{Set: true}.Ptr())

	p := YearOf(2001).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 2001, *p)
}
