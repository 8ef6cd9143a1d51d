package handlers

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptHandler(t *testing.T) {
	h := newTestHandlers(t)
	p, ok := h.catalog.Get("content_audit")
	require.True(t, ok)

	req := mcp.GetPromptRequest{}
	req.Params.Name = p.Name
	req.Params.Arguments = map[string]string{"category_id": "103"}

	res, err := h.promptHandler(p)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)

	text := res.Messages[0].Content.(mcp.TextContent).Text
	assert.Contains(t, text, "category 103")
	assert.Equal(t, p.Description, res.Description)
}

func TestPromptHandler_MissingArgument(t *testing.T) {
	h := newTestHandlers(t)
	p, ok := h.catalog.Get("content_audit")
	require.True(t, ok)

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{}

	_, err := h.promptHandler(p)(context.Background(), req)
	assert.ErrorContains(t, err, "category_id")
}

func TestPromptDefinition(t *testing.T) {
	h := newTestHandlers(t)
	p, ok := h.catalog.Get("content_audit")
	require.True(t, ok)

	def := promptDefinition(p)

	assert.Equal(t, "content_audit", def.Name)
	require.Len(t, def.Arguments, 2)
	assert.True(t, def.Arguments[0].Required)
	assert.False(t, def.Arguments[1].Required)
}
