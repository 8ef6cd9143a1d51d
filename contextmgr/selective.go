package contextmgr

// fieldAliases lists, per requested field, the other source names that hold
// the same value. The table is closed: no other camel/snake conversion is done.
var fieldAliases = map[string][]string{
	"created_at":  {"createdAt"},
	"updated_at":  {"updatedAt"},
	"screen_name": {"screenName"},
}

// SelectiveContext keeps only the requested fields of a record.
type SelectiveContext struct{}

func (SelectiveContext) Name() string { return "selective" }

func (s SelectiveContext) Reshape(data any, opts Options) any {
	return s.Apply(data, opts.Fields)
}

// Apply returns a map holding the requested fields of data, keyed by the
// requested name. Fields missing under both their own name and their alias are
// omitted. data is returned unchanged when fields is empty or data is not a
// record.
func (SelectiveContext) Apply(data any, fields []string) any {
	if len(fields) == 0 {
		return data
	}

	shape := Inspect(data)
	if !shape.IsRecord() {
		return data
	}

	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if v, ok := lookupWithAliases(shape, field); ok {
			out[field] = v
		}
	}
	return out
}

func lookupWithAliases(shape Shape, field string) (any, bool) {
	if v, ok := shape.Lookup(field); ok {
		return v, true
	}
	for _, alias := range fieldAliases[field] {
		if v, ok := shape.Lookup(alias); ok {
			return v, true
		}
	}
	return nil, false
}
