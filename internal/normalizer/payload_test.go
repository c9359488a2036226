package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHotels(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantNames []string
	}{
		{
			name:      "data key",
			body:      `{"status":"ok","data":[{"name":"From data"}]}`,
			wantNames: []string{"From data"},
		},
		{
			name:      "hotels key wins over data",
			body:      `{"data":[{"name":"From data"}],"hotels":[{"name":"From hotels"}]}`,
			wantNames: []string{"From hotels"},
		},
		{
			name:      "results key",
			body:      `{"results":[{"name":"R1"},{"name":"R2"}]}`,
			wantNames: []string{"R1", "R2"},
		},
		{
			name:      "bare array",
			body:      `[{"name":"Bare"}]`,
			wantNames: []string{"Bare"},
		},
		{
			name:      "non-array hotels key is skipped",
			body:      `{"hotels":{"name":"not a list"},"results":[{"name":"R"}]}`,
			wantNames: []string{"R"},
		},
		{
			name:      "object without listings",
			body:      `{"status":"ok","count":0}`,
			wantNames: []string{},
		},
		{
			name:      "trailing whitespace",
			body:      "{\"hotels\":[{\"name\":\"H\"}]}\n \t",
			wantNames: []string{"H"},
		},
		{
			name:      "non-object elements are skipped",
			body:      `[1,"two",{"name":"Three"},null]`,
			wantNames: []string{"Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotels, err := ExtractHotels([]byte(tt.body))
			require.NoError(t, err)

			names := make([]string, 0, len(hotels))
			for _, h := range hotels {
				names = append(names, h["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestExtractHotelsInvalidPayload(t *testing.T) {
	for _, body := range []string{``, `<html>oops</html>`, `"just a string"`, `42`, `null`,
		`{"hotels":[]}<html>`, `[] []`, `{"data":[{"name":"A"}]} {"data":[]}`} {
		_, err := ExtractHotels([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidPayload, "body %q", body)
	}
}
