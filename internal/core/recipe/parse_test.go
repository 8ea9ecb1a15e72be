package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"json array", `["Tomates","Riz"]`, []string{"Tomates", "Riz"}},
		{"comma separated", "Tomates, Riz, Citron", []string{"Tomates", "Riz", "Citron"}},
		{"newline separated", "Tomates\nRiz\nCitron", []string{"Tomates", "Riz", "Citron"}},
		{"mixed separators", "Tomates,\nRiz", []string{"Tomates", "Riz"}},
		{"extra whitespace", "  Tomates ,  Riz  ", []string{"Tomates", "Riz"}},
		{"single item", "Tomates", []string{"Tomates"}},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"empty segments dropped", "Tomates,,Riz,", []string{"Tomates", "Riz"}},
		{"broken array falls back to split", "[Tomates, Riz]", []string{"[Tomates", "Riz]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStringList(tt.input))
		})
	}
}

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{"plain array", `["a","b"]`, StringList{"a", "b"}},
		{"array with numbers", `["a",2]`, StringList{"a", "2"}},
		{"array with null entries", `["a",null,"b"]`, StringList{"a", "b"}},
		{"string containing array", `"[\"a\",\"b\"]"`, StringList{"a", "b"}},
		{"comma string", `"a, b"`, StringList{"a", "b"}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringListUnmarshalRejectsObjects(t *testing.T) {
	var got StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
}

func TestStringListInStruct(t *testing.T) {
	var r Recipe
	payload := `{"title":"Test","ingredients":"Tomates, Riz","tags":["simple"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	assert.Equal(t, StringList{"Tomates", "Riz"}, r.Ingredients)
	assert.Equal(t, StringList{"simple"}, r.Tags)
}
