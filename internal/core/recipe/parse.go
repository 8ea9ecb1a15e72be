package recipe

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// StringList unmarshals leniently from the shapes seed files and model
// output actually produce: a JSON array, a string containing a JSON array,
// or a comma/newline separated string.
type StringList []string

var listSeparator = regexp.MustCompile(`\r?\n|,`)

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []interface{}
	if err := json.Unmarshal(data, &items); err == nil {
		*l = stringify(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = ParseStringList(raw)
		return nil
	}

	if string(data) == "null" {
		*l = nil
		return nil
	}
	return fmt.Errorf("string list: unsupported value %s", data)
}

// ParseStringList splits a free-form string into items. Strings that look
// like a JSON array are parsed as one; anything else is split on commas
// and newlines.
func ParseStringList(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var items []interface{}
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return stringify(items)
		}
		// Fall back to splitting when the array does not parse.
	}

	parts := listSeparator.Split(trimmed, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func stringify(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case json.Number:
			out = append(out, v.String())
		case nil:
			// skip
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
