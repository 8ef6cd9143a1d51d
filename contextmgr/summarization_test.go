package contextmgr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestSummarizationTruncatesLongText(t *testing.T) {
	result := Summarization{}.Apply(map[string]any{"description": strings.Repeat("A", 150)}, 50)

	record, ok := result.(map[string]any)
	require.True(t, ok)
	description := record["description"].(string)
	assert.Len(t, description, 50)
	assert.True(t, strings.HasSuffix(description, Ellipsis))
	assert.Equal(t, strings.Repeat("A", 47)+Ellipsis, description)
}

func TestSummarizationCopiesShortAndNonTextValues(t *testing.T) {
	nested := map[string]any{"inner": strings.Repeat("z", 500)}
	record := map[string]any{
		"name":   "short",
		"plays":  12,
		"ready":  true,
		"nested": nested,
		"none":   nil,
		"exact":  strings.Repeat("e", 10),
	}

	result := Summarization{}.Apply(record, 10)

	assert.Equal(t, record, result)
}

func TestSummarizationObjectRecord(t *testing.T) {
	record := mediaRecord{ID: "0_a", Name: "clip", Description: strings.Repeat("d", 30), secret: strings.Repeat("s", 30)}

	result := Summarization{}.Apply(record, 10)

	assert.Equal(t, map[string]any{
		"id":          "0_a",
		"name":        "clip",
		"description": "ddddddd...",
		"createdAt":   int64(0),
	}, result)
}

func TestSummarizationNamedStringType(t *testing.T) {
	result := Summarization{}.Apply(map[string]any{"status": label("abcdefghij")}, 5)

	assert.Equal(t, map[string]any{"status": "ab..."}, result)
}

func TestSummarizationCountsRunes(t *testing.T) {
	text := strings.Repeat("é", 8)

	assert.Equal(t, text, Truncate(text, 8))
	assert.Equal(t, "éééé...", Truncate(text, 7))
}

func TestSummarizationLengthBound(t *testing.T) {
	for maxLength := 3; maxLength <= 20; maxLength++ {
		for n := 0; n <= 30; n++ {
			s := strings.Repeat("x", n)
			out := Truncate(s, maxLength)
			assert.LessOrEqual(t, len(out), maxLength)
			if n > maxLength {
				assert.Equal(t, s[:maxLength-3]+Ellipsis, out)
			} else {
				assert.Equal(t, s, out)
			}
		}
	}
}

func TestSummarizationIdempotent(t *testing.T) {
	record := map[string]any{
		"description": strings.Repeat("lorem ipsum ", 40),
		"name":        "short",
		"count":       3,
	}

	for _, maxLength := range []int{1, 2, 3, 10, 100} {
		once := Summarization{}.Apply(record, maxLength)
		twice := Summarization{}.Apply(once, maxLength)
		assert.Equal(t, once, twice, "max_length=%d", maxLength)
	}
}

func TestSummarizationTinyMaxLengthClampsToEllipsis(t *testing.T) {
	assert.Equal(t, "...", Truncate("abcdef", 2))
	assert.Equal(t, "...", Truncate("abcdef", 0))
	assert.Equal(t, "ab", Truncate("ab", 2))
}

func TestSummarizationNonRecordPassesThrough(t *testing.T) {
	long := strings.Repeat("x", 200)

	assert.Equal(t, long, Summarization{}.Apply(long, 10))
	assert.Equal(t, []string{long}, Summarization{}.Apply([]string{long}, 10))
}

func TestSummarizationReshapeWithoutMaxLengthIsNoop(t *testing.T) {
	record := map[string]any{"description": strings.Repeat("x", 200)}

	assert.Equal(t, record, Summarization{}.Reshape(record, Options{}))
}
