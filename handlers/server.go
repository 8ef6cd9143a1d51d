package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ServerName = "video-mcp"

// NewServer registers every tool, resource and prompt on a new MCP server.
func NewServer(h *Handlers, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTools(h.Tools()...)
	h.registerResources(s)
	h.registerPrompts(s)

	return s
}

// Call runs one tool in-process, bypassing the transport.
func (h *Handlers) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	for _, t := range h.Tools() {
		if t.Tool.Name != name {
			continue
		}
		req := mcp.CallToolRequest{}
		req.Params.Name = name
		req.Params.Arguments = args
		return t.Handler(ctx, req)
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}

// ResultText joins the text parts of a tool result.
func ResultText(res *mcp.CallToolResult) string {
	var text string
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}
