package llm

import "strings"

// ExtractJSON returns the first brace-delimited object found in s, tolerating
// prose around the JSON (models sometimes wrap the object in commentary or
// markdown fences despite a schema-constrained request). Returns s unchanged
// when no object is found so the caller's unmarshal error stays meaningful.
func ExtractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
