package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  SearchParams
		wantErr bool
	}{
		{"defaults", SearchParams{Size: 20}, false},
		{"zero size", SearchParams{Size: 0}, true},
		{"negative size", SearchParams{Size: -1}, true},
		{"negative from", SearchParams{From: -1, Size: 20}, true},
		{"window exactly at cap", SearchParams{From: 9980, Size: 20}, false},
		{"window past cap", SearchParams{From: 9981, Size: 20}, true},
		{"large size past cap", SearchParams{From: 0, Size: 10001}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestParseSearchType(t *testing.T) {
	for _, valid := range []string{"packages", "options", "flakes"} {
		got, err := ParseSearchType(valid)
		require.NoError(t, err)
		assert.Equal(t, SearchType(valid), got)
	}

	got, err := ParseSearchType("")
	require.NoError(t, err)
	assert.Equal(t, TypePackages, got, "empty type defaults to packages")

	_, err = ParseSearchType("modules")
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
