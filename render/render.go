// Package render serialises reshaped results for a tool or resource response.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/SaiNageswarS/video-mcp/contextmgr"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported format %q: use json or markdown", s)
}

// Render serialises v in the given format. title is used by markdown only.
func Render(format Format, title string, v any) (string, error) {
	if format == FormatMarkdown {
		return Markdown(title, v)
	}
	return JSON(v)
}

func JSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}

// Markdown renders a reshaped page as a table of its items, a record as a
// key/value table and anything else as its JSON encoding.
func Markdown(title string, v any) (string, error) {
	generic, err := normalize(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if title = strings.TrimSpace(title); title != "" {
		b.WriteString("### ")
		b.WriteString(mdEscape(title))
		b.WriteString("\n\n")
	}

	switch {
	case contextmgr.IsPage(v):
		writePage(&b, generic.(map[string]any))
	default:
		switch val := generic.(type) {
		case map[string]any:
			writeRecord(&b, val)
		case []any:
			writeTable(&b, val)
		default:
			b.WriteString(cell(val))
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}

func writePage(b *strings.Builder, page map[string]any) {
	fmt.Fprintf(b, "_Page %s of %s (%s total, %s per page)_\n\n",
		cell(page[contextmgr.KeyPageIndex]),
		cell(page[contextmgr.KeyTotalPages]),
		cell(page[contextmgr.KeyTotalCount]),
		cell(page[contextmgr.KeyPageSize]))

	items, ok := page[contextmgr.KeyItems].([]any)
	if !ok {
		b.WriteString(cell(page[contextmgr.KeyItems]))
		b.WriteByte('\n')
		return
	}
	writeTable(b, items)
}

// writeTable renders records as rows whose columns are the sorted union of
// their keys. Non-record items become a bullet list.
func writeTable(b *strings.Builder, items []any) {
	if len(items) == 0 {
		b.WriteString("_No results._\n")
		return
	}

	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			for _, it := range items {
				b.WriteString("- ")
				b.WriteString(cell(it))
				b.WriteByte('\n')
			}
			return
		}
		records = append(records, rec)
	}

	columns := sortedKeys(records...)

	b.WriteString("|")
	for _, c := range columns {
		b.WriteString(" ")
		b.WriteString(mdEscape(c))
		b.WriteString(" |")
	}
	b.WriteString("\n|")
	for range columns {
		b.WriteString("---|")
	}
	b.WriteByte('\n')

	for _, rec := range records {
		b.WriteString("|")
		for _, c := range columns {
			b.WriteString(" ")
			if v, ok := rec[c]; ok {
				b.WriteString(cell(v))
			}
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}
}

func writeRecord(b *strings.Builder, rec map[string]any) {
	b.WriteString("| Key | Value |\n|---|---|\n")
	for _, k := range sortedKeys(rec) {
		b.WriteString("| ")
		b.WriteString(mdEscape(k))
		b.WriteString(" | ")
		b.WriteString(cell(rec[k]))
		b.WriteString(" |\n")
	}
}

func sortedKeys(records ...map[string]any) []string {
	seen := map[string]struct{}{}
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return mdEscape(val)
	case json.Number:
		return val.String()
	case bool, int, int64, float64:
		return fmt.Sprint(val)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return mdEscape(fmt.Sprint(v))
	}
	return mdEscape(string(b))
}

// normalize round-trips v through JSON so structs become maps keyed by their
// json names. Numbers are kept exact.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// mdEscape keeps text inside one table cell.
func mdEscape(s string) string {
	return cellEscaper.Replace(s)
}
