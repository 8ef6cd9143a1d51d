package contextmgr

import (
	"reflect"
	"unicode/utf8"
)

const (
	DefaultMaxLength = 100
	Ellipsis         = "..."
)

// Summarization shortens long text fields of a record.
type Summarization struct{}

func (Summarization) Name() string { return "summarization" }

// Reshape truncates with opts.MaxLength. A zero MaxLength means the caller did
// not ask for summarization and data passes through.
func (s Summarization) Reshape(data any, opts Options) any {
	if opts.MaxLength <= 0 {
		return data
	}
	return s.Apply(data, opts.MaxLength)
}

// Apply copies every field of a record into a new map, truncating text values
// longer than maxLength runes. Non-record data is returned unchanged.
func (Summarization) Apply(data any, maxLength int) any {
	shape := Inspect(data)
	if !shape.IsRecord() {
		return data
	}

	out := make(map[string]any)
	shape.Each(func(name string, value any) {
		out[name] = truncateValue(value, maxLength)
	})
	return out
}

// Truncate returns s unchanged when it fits in maxLength runes. Otherwise it
// keeps the first max(0, maxLength-3) runes and appends Ellipsis.
func Truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	keep := max(0, maxLength-len(Ellipsis))
	return string([]rune(s)[:keep]) + Ellipsis
}

func truncateValue(v any, maxLength int) any {
	if s, ok := v.(string); ok {
		return Truncate(s, maxLength)
	}

	// named string types
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		if s := rv.String(); utf8.RuneCountInString(s) > maxLength {
			return Truncate(s, maxLength)
		}
	}
	return v
}
