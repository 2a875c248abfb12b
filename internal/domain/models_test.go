package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRange_Contains_Boundaries(t *testing.T) {
	r := PageRange{Start: 13, End: 121}

	tests := []struct {
		name string
		page int
		want bool
	}{
		{"before start", 12, false},
		{"exactly start", 13, true},
		{"inside", 70, true},
		{"exactly end", 121, true},
		{"after end", 122, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Contains(tc.page))
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := IOError("open source document", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "[io]")
	assert.Contains(t, err.Error(), "open source document")
}
