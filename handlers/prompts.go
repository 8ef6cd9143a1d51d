package handlers

import (
	"context"

	"github.com/SaiNageswarS/video-mcp/prompts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (h *Handlers) registerPrompts(s *server.MCPServer) {
	if h.catalog == nil {
		return
	}
	for _, p := range h.catalog.List() {
		s.AddPrompt(promptDefinition(p), h.promptHandler(p))
	}
}

func promptDefinition(p prompts.Prompt) mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(p.Description)}
	for _, arg := range p.Arguments {
		argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
		if arg.Required {
			argOpts = append(argOpts, mcp.RequiredArgument())
		}
		opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
	}
	return mcp.NewPrompt(p.Name, opts...)
}

func (h *Handlers) promptHandler(p prompts.Prompt) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := h.catalog.Render(p.Name, req.Params.Arguments)
		if err != nil {
			return nil, err
		}

		return &mcp.GetPromptResult{
			Description: p.Description,
			Messages: []mcp.PromptMessage{
				{
					Role: "user",
					Content: mcp.TextContent{
						Type: "text",
						Text: text,
					},
				},
			},
		}, nil
	}
}
