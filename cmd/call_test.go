package cmd

import (
	"testing"

	"github.com/SaiNageswarS/video-mcp/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolArgs(t *testing.T) {
	got, err := parseToolArgs([]string{
		"page=2",
		"fields=[\"id\",\"name\"]",
		"user_id=alice",
		"include_analytics=true",
		"search=a=b",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"page":              float64(2),
		"fields":            []any{"id", "name"},
		"user_id":           "alice",
		"include_analytics": true,
		"search":            "a=b",
	}, got)
}

func TestParseToolArgsRejectsMissingKey(t *testing.T) {
	_, err := parseToolArgs([]string{"=3"})
	assert.Error(t, err)

	_, err = parseToolArgs([]string{"page"})
	assert.Error(t, err)
}

func TestArgumentList(t *testing.T) {
	p := prompts.Prompt{Arguments: []prompts.Argument{
		{Name: "category_id", Required: true},
		{Name: "focus"},
	}}

	assert.Equal(t, "category_id, focus?", argumentList(p))
	assert.Equal(t, "-", argumentList(prompts.Prompt{}))
}
