package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var v struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	require.NoError(t, ParseJSON(`{"name":"Riz","price":1.9}`, &v))
	assert.Equal(t, "Riz", v.Name)
	assert.Equal(t, 1.9, v.Price)
}

func TestParseJSONTrailingData(t *testing.T) {
	var v map[string]interface{}
	assert.Error(t, ParseJSON(`{"a":1} garbage`, &v))
	assert.Error(t, ParseJSON(`{"a":1}{"b":2}`, &v))
}

func TestParseJSONStrict(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSONStrict(`{"name":"ok"}`, &v))
	assert.Error(t, ParseJSONStrict(`{"name":"ok","extra":true}`, &v))
}

func TestQuoteJSONKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unquoted keys", `{title: "Soupe", servings: 2}`, `{"title": "Soupe", "servings": 2}`},
		{"already quoted untouched", `{"title": "Soupe"}`, `{"title": "Soupe"}`},
		{"nested object", `{a: {b: 1}}`, `{"a": {"b": 1}}`},
		{"colon inside string untouched", `{"note": "ratio 1:2"}`, `{"note": "ratio 1:2"}`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteJSONKeys(tt.input))
		})
	}
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out)
}
