package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCatalog(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantLabel string
	}{
		{"exact keyword", "poulet", "Poulet fermier"},
		{"keyword inside label", "Blanc de poulet fermier", "Poulet fermier"},
		{"case and accents ignored", "PÂTES fraîches", "Pâtes"},
		{"plural keyword", "Tomates", "Tomates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := MatchCatalog(tt.label)
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLabel, entry.Label)
		})
	}
}

func TestMatchCatalogUnknown(t *testing.T) {
	assert.Nil(t, MatchCatalog("ingredient mystère"))
	assert.Nil(t, MatchCatalog(""))
}

// Catalog matching runs in declaration order, so the first declared entry
// with a matching keyword wins even when a later entry would also match.
func TestMatchCatalogDeclarationOrder(t *testing.T) {
	entry := MatchCatalog("riz au lait")
	require.NotNil(t, entry)
	assert.Equal(t, "Riz", entry.Label)
}
