// Package frontmatter parses and generates the restricted YAML-like header
// block used by the markdown content files. Values are strings, string
// arrays or booleans; nothing else round-trips. Parsing never fails: any
// input that does not carry a well-formed header is treated as a plain body.
package frontmatter

import "strings"

const Delimiter = "---"

// Record is an ordered mapping from keys to string, []string or bool
// values. Generation emits keys in insertion order.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{values: map[string]any{}}
}

func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) String(key string) string {
	if v, ok := r.values[key].(string); ok {
		return v
	}
	return ""
}

func (r *Record) Strings(key string) []string {
	if v, ok := r.values[key].([]string); ok {
		return v
	}
	return nil
}

func (r *Record) Bool(key string) bool {
	if v, ok := r.values[key].(bool); ok {
		return v
	}
	return false
}

func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Parse splits content into a header record and the remaining body. The
// header is a leading delimiter line, `key: value` lines, and a closing
// delimiter line. A missing closing delimiter means there is no header and
// the whole input is body. Malformed header lines are skipped.
func Parse(content string) (*Record, string) {
	record := NewRecord()

	rest, ok := strings.CutPrefix(content, Delimiter+"\n")
	if !ok {
		return record, content
	}

	header, body, ok := strings.Cut(rest, "\n"+Delimiter+"\n")
	if !ok {
		return record, content
	}

	for _, line := range strings.Split(header, "\n") {
		key, raw, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		record.Set(key, parseValue(strings.TrimSpace(raw)))
	}

	return record, body
}

// parseValue applies bracketed-list splitting, quote stripping and the
// unconditional true/false conversion, in that order of precedence.
func parseValue(raw string) any {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var items []string
		for _, item := range strings.Split(raw[1:len(raw)-1], ",") {
			if item = unquote(strings.TrimSpace(item)); item != "" {
				items = append(items, item)
			}
		}
		if items == nil {
			items = []string{}
		}
		return items
	}

	value := unquote(raw)
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Generate renders the record between delimiter lines. Arrays render as a
// quoted bracket list and booleans unquoted; both are emitted even when
// empty or false. Strings are double-quoted and empty strings are omitted
// entirely, so parse-generate round trips are lossy for empty values.
func Generate(record *Record) string {
	var b strings.Builder
	b.WriteString(Delimiter + "\n")

	for _, key := range record.keys {
		switch v := record.values[key].(type) {
		case []string:
			b.WriteString(key + ": [")
			for i, item := range v {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(`"` + item + `"`)
			}
			b.WriteString("]\n")
		case bool:
			if v {
				b.WriteString(key + ": true\n")
			} else {
				b.WriteString(key + ": false\n")
			}
		case string:
			if v != "" {
				b.WriteString(key + `: "` + v + `"` + "\n")
			}
		}
	}

	b.WriteString(Delimiter + "\n")
	return b.String()
}
