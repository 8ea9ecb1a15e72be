package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Tomates", "tomates"},
		{"trims whitespace", "  Poulet  ", "poulet"},
		{"strips acute accent", "Pâtes complètes", "pates completes"},
		{"strips cedilla mark", "Français", "francais"},
		{"strips mixed diacritics", "Crème fraîche", "creme fraiche"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Pâtes", "Crème fraîche", "Épices variées", "tomates"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "re-normalizing %q must be a no-op", input)
	}
}
