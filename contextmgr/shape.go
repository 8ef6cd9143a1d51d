// Package contextmgr reshapes API responses into payloads that fit an LLM's
// context window. It provides three stateless strategies (pagination, field
// selection, summarization) and a fixed-order pipeline that composes them.
package contextmgr

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Kind classifies a value handed to a strategy.
type Kind uint8

const (
	Opaque Kind = iota
	RecordMap
	RecordObject
	Sequence
)

func (k Kind) String() string {
	switch k {
	case RecordMap:
		return "record_map"
	case RecordObject:
		return "record_object"
	case Sequence:
		return "sequence"
	default:
		return "opaque"
	}
}

var (
	itemKeys  = []string{"objects", "items"}
	countKeys = []string{"totalCount", "total_count"}
)

// Shape is the result of inspecting a value once. Pointers and interfaces are
// dereferenced before classification.
type Shape struct {
	Kind  Kind
	value reflect.Value
}

// Inspect classifies data by an ordered sequence of capability checks.
func Inspect(data any) Shape {
	if data == nil {
		return Shape{Kind: Opaque}
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Shape{Kind: Opaque}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			return Shape{Kind: RecordMap, value: v}
		}
	case reflect.Struct:
		return Shape{Kind: RecordObject, value: v}
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return Shape{Kind: Sequence, value: v}
		}
	}

	return Shape{Kind: Opaque}
}

// IsRecord reports whether the shape is a map or an attribute object.
func (s Shape) IsRecord() bool {
	return s.Kind == RecordMap || s.Kind == RecordObject
}

// Len returns the element count of a Sequence and 0 for every other kind.
func (s Shape) Len() int {
	if s.Kind != Sequence {
		return 0
	}
	return s.value.Len()
}

// Lookup resolves name on a record. Map records match keys exactly; object
// records match the json tag name first and then the field name ignoring case.
func (s Shape) Lookup(name string) (any, bool) {
	switch s.Kind {
	case RecordMap:
		key := reflect.ValueOf(name).Convert(s.value.Type().Key())
		v := s.value.MapIndex(key)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case RecordObject:
		if v, ok := lookupField(s.value, name, false); ok {
			return v, true
		}
		return lookupField(s.value, name, true)
	}
	return nil, false
}

// Each visits every field of a record. Object records report their json name.
func (s Shape) Each(fn func(name string, value any)) {
	switch s.Kind {
	case RecordMap:
		iter := s.value.MapRange()
		for iter.Next() {
			fn(iter.Key().String(), iter.Value().Interface())
		}
	case RecordObject:
		eachField(s.value, fn)
	}
}

// pageMembers returns the items and count members of a page-shaped record.
func (s Shape) pageMembers() (items any, count any, ok bool) {
	if !s.IsRecord() {
		return nil, nil, false
	}
	items, ok = s.firstOf(itemKeys)
	if !ok {
		return nil, nil, false
	}
	count, ok = s.firstOf(countKeys)
	if !ok {
		return nil, nil, false
	}
	return items, count, true
}

func (s Shape) firstOf(names []string) (any, bool) {
	for _, name := range names {
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}

func lookupField(v reflect.Value, name string, foldName bool) (any, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tagName, skip := jsonName(f)
		if skip {
			continue
		}

		if f.Anonymous && tagName == "" {
			if inner, ok := embeddedStruct(v.Field(i)); ok {
				if found, ok := lookupField(inner, name, foldName); ok {
					return found, true
				}
			}
			continue
		}

		if !foldName && tagName == name {
			return v.Field(i).Interface(), true
		}
		if foldName && strings.EqualFold(f.Name, name) {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

func eachField(v reflect.Value, fn func(name string, value any)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tagName, skip := jsonName(f)
		if skip {
			continue
		}

		if f.Anonymous && tagName == "" {
			if inner, ok := embeddedStruct(v.Field(i)); ok {
				eachField(inner, fn)
			}
			continue
		}

		name := tagName
		if name == "" {
			name = f.Name
		}
		fn(name, v.Field(i).Interface())
	}
}

func embeddedStruct(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.Kind() == reflect.Struct
}

// jsonName returns the name part of a field's json tag and whether the field
// is excluded from encoding.
func jsonName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// toInt converts any numeric value to int. Floats must be integral.
func toInt(v any) (int, bool) {
	if n, ok := v.(json.Number); ok {
		i, err := n.Int64()
		return int(i), err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != float64(int64(f)) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// ToRecord copies a map or attribute object into a new map keyed by field
// name. It reports false for any other shape.
func ToRecord(data any) (map[string]any, bool) {
	shape := Inspect(data)
	if !shape.IsRecord() {
		return nil, false
	}
	out := make(map[string]any)
	shape.Each(func(name string, value any) {
		out[name] = value
	})
	return out, true
}
