package contextmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectiveFiltersAndResolvesAlias(t *testing.T) {
	record := map[string]any{"id": 1, "createdAt": "2024-01-01", "name": "x"}

	result := SelectiveContext{}.Apply(record, []string{"id", "created_at"})

	assert.Equal(t, map[string]any{"id": 1, "created_at": "2024-01-01"}, result)
}

func TestSelectiveScreenNameAlias(t *testing.T) {
	result := SelectiveContext{}.Apply(map[string]any{"screenName": "Bob"}, []string{"screen_name"})

	assert.Equal(t, map[string]any{"screen_name": "Bob"}, result)
}

func TestSelectiveLiteralNameWinsOverAlias(t *testing.T) {
	record := map[string]any{"updated_at": "literal", "updatedAt": "alias"}

	result := SelectiveContext{}.Apply(record, []string{"updated_at"})

	assert.Equal(t, map[string]any{"updated_at": "literal"}, result)
}

func TestSelectiveAliasTableIsClosed(t *testing.T) {
	record := map[string]any{"partnerId": 42, "fullName": "Jane"}

	result := SelectiveContext{}.Apply(record, []string{"partner_id", "full_name"})

	assert.Equal(t, map[string]any{}, result)
}

func TestSelectiveMissingFieldsOmitted(t *testing.T) {
	result := SelectiveContext{}.Apply(map[string]any{"id": 7}, []string{"id", "description"})

	assert.Equal(t, map[string]any{"id": 7}, result)
}

func TestSelectiveNoFieldsIsIdentity(t *testing.T) {
	record := map[string]any{"id": 1}
	list := []int{1, 2}
	object := &mediaRecord{ID: "0_a"}

	assert.Equal(t, record, SelectiveContext{}.Apply(record, nil))
	assert.Equal(t, list, SelectiveContext{}.Apply(list, []string{}))
	assert.Same(t, object, SelectiveContext{}.Apply(object, nil))
	assert.Equal(t, 3, SelectiveContext{}.Apply(3, nil))
}

func TestSelectiveObjectRecord(t *testing.T) {
	record := mediaRecord{ID: "0_a", Name: "clip", CreatedAt: 1700000000, secret: "hidden"}

	result := SelectiveContext{}.Apply(&record, []string{"id", "created_at", "Name", "secret"})

	assert.Equal(t, map[string]any{
		"id":         "0_a",
		"created_at": int64(1700000000),
		"Name":       "clip",
	}, result)
}

func TestSelectiveNonRecordPassesThrough(t *testing.T) {
	list := []any{map[string]any{"id": 1}}

	assert.Equal(t, list, SelectiveContext{}.Apply(list, []string{"id"}))
	assert.Equal(t, "raw", SelectiveContext{}.Apply("raw", []string{"id"}))
}

func TestSelectiveDoesNotMutateInput(t *testing.T) {
	record := map[string]any{"id": 1, "name": "x"}

	_ = SelectiveContext{}.Apply(record, []string{"id"})

	assert.Equal(t, map[string]any{"id": 1, "name": "x"}, record)
}
