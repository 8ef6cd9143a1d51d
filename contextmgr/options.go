package contextmgr

import (
	"fmt"
	"strings"
)

// Request argument names read by ParseOptions.
const (
	ArgPage      = "page"
	ArgPageSize  = "page_size"
	ArgFields    = "fields"
	ArgMaxLength = "max_length"
)

// Options configures a Run. Zero values disable the matching stage:
// pagination runs when Page or PageSize is set, summarization when MaxLength
// is set, field selection when Fields is non-empty.
type Options struct {
	Page      int
	PageSize  int
	Fields    []string
	MaxLength int
}

// Paginated reports whether the pagination stage is enabled.
func (o Options) Paginated() bool {
	return o.Page > 0 || o.PageSize > 0
}

// WithPageDefaults enables pagination, filling an unset page with 1 and an
// unset page size with pageSize.
func (o Options) WithPageDefaults(pageSize int) Options {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = pageSize
	}
	return o
}

// WithMaxLengthDefault sets MaxLength when the request did not.
func (o Options) WithMaxLengthDefault(maxLength int) Options {
	if o.MaxLength <= 0 {
		o.MaxLength = maxLength
	}
	return o
}

// ConfigurationError reports a request argument that cannot configure a
// strategy.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Key, e.Reason)
}

// ParseOptions reads page, page_size, fields and max_length from request
// arguments. Other keys are ignored.
func ParseOptions(args map[string]any) (Options, error) {
	var (
		opts Options
		err  error
	)

	if opts.Page, err = positiveInt(args, ArgPage); err != nil {
		return Options{}, err
	}
	if opts.PageSize, err = positiveInt(args, ArgPageSize); err != nil {
		return Options{}, err
	}
	if opts.MaxLength, err = positiveInt(args, ArgMaxLength); err != nil {
		return Options{}, err
	}
	if opts.Fields, err = stringList(args, ArgFields); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func positiveInt(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, nil
	}

	n, ok := toInt(raw)
	if !ok {
		return 0, &ConfigurationError{Key: key, Reason: fmt.Sprintf("expected an integer, got %v", raw)}
	}
	if n < 1 {
		return 0, &ConfigurationError{Key: key, Reason: fmt.Sprintf("must be at least 1, got %d", n)}
	}
	return n, nil
}

func stringList(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var fields []string
	switch v := raw.(type) {
	case []string:
		fields = v
	case string:
		fields = strings.Split(v, ",")
	case []any:
		fields = make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &ConfigurationError{Key: key, Reason: fmt.Sprintf("expected field names, got %v", item)}
			}
			fields = append(fields, s)
		}
	default:
		return nil, &ConfigurationError{Key: key, Reason: fmt.Sprintf("expected a list of field names, got %T", raw)}
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out, nil
}
