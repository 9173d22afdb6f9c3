package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims surrounding whitespace",
			input:    []string{"  Kannur  ", "Idukki  "},
			expected: []string{"Kannur", "Idukki"},
		},
		{
			name:     "keeps first occurrence order",
			input:    []string{"Wayanad", "Kannur", "Wayanad", "Idukki", "Kannur"},
			expected: []string{"Wayanad", "Kannur", "Idukki"},
		},
		{
			name:     "drops blanks",
			input:    []string{"Kannur", "", "   ", "Idukki"},
			expected: []string{"Kannur", "Idukki"},
		},
		{
			name:     "duplicates after trimming collapse",
			input:    []string{" Kannur", "Kannur "},
			expected: []string{"Kannur"},
		},
		{
			name:     "case sensitive",
			input:    []string{"Kannur", "kannur"},
			expected: []string{"Kannur", "kannur"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
