package contextmgr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func sampleList() *mediaList {
	return &mediaList{
		Objects: []mediaRecord{
			{ID: "0_a", Name: "intro", Description: strings.Repeat("a", 40), CreatedAt: 1},
			{ID: "0_b", Name: "keynote", Description: strings.Repeat("b", 40), CreatedAt: 2},
			{ID: "0_c", Name: "outro", Description: "short", CreatedAt: 3},
		},
		TotalCount: 3,
	}
}

func TestRunAppliesStagesInOrder(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	opts := Options{Page: 1, PageSize: 2, Fields: []string{"id", "description", "created_at"}, MaxLength: 10}

	result, err := Run(context.Background(), sampleList(), opts)

	require.NoError(t, err)
	page := asPage(t, result)
	expected := []any{
		map[string]any{"id": "0_a", "description": "aaaaaaa...", "created_at": int64(1)},
		map[string]any{"id": "0_b", "description": "bbbbbbb...", "created_at": int64(2)},
	}
	assert.Equal(t, expected, page[KeyItems])
	assert.Equal(t, expected, page[KeyEntries])
	assert.Equal(t, 2, page[KeyTotalPages])
	assert.Equal(t, 3, page[KeyTotalCount])
}

func TestRunPaginationOnly(t *testing.T) {
	result, err := Run(context.Background(), sampleList(), Options{Page: 2, PageSize: 2})

	require.NoError(t, err)
	page := asPage(t, result)
	assert.Equal(t, []any{sampleList().Objects[2]}, page[KeyItems])
}

func TestRunSingleRecord(t *testing.T) {
	record := sampleList().Objects[0]

	result, err := Run(context.Background(), record, Options{Fields: []string{"name", "description"}, MaxLength: 8})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "intro", "description": "aaaaa..."}, result)
}

func TestRunNothingEnabledIsIdentity(t *testing.T) {
	list := sampleList()

	result, err := Run(context.Background(), list, Options{})

	require.NoError(t, err)
	assert.Same(t, list, result)
}

func TestRunEmptyPage(t *testing.T) {
	result, err := Run(context.Background(), &mediaList{}, Options{Page: 1, PageSize: 5, Fields: []string{"id"}})

	require.NoError(t, err)
	page := asPage(t, result)
	assert.Equal(t, []any{}, page[KeyItems])
	assert.Equal(t, []any{}, page[KeyEntries])
}

func TestRunOpaqueValue(t *testing.T) {
	result, err := Run(context.Background(), 7, Options{Page: 1, PageSize: 5, Fields: []string{"id"}, MaxLength: 3})

	require.NoError(t, err)
	assert.Equal(t, 7, result)
}
