package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/video-mcp/contextmgr"
	"github.com/SaiNageswarS/video-mcp/render"
	"github.com/SaiNageswarS/video-mcp/videoapi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	uriCategories  = "video://categories"
	uriMediaPrefix = "video://media/"
	uriUsersPrefix = "video://users/"
	mimeJSON       = "application/json"
	templateMedia  = uriMediaPrefix + "{entryId}"
	templateUser   = uriUsersPrefix + "{userId}"
)

func (h *Handlers) registerResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(uriCategories, "Categories",
			mcp.WithResourceDescription("First page of the category tree"),
			mcp.WithMIMEType(mimeJSON),
		),
		h.ReadCategories,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(templateMedia, "Media entry",
			mcp.WithTemplateDescription("A single media entry by id"),
			mcp.WithTemplateMIMEType(mimeJSON),
		),
		h.ReadMedia,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(templateUser, "User",
			mcp.WithTemplateDescription("A single partner user by id"),
			mcp.WithTemplateMIMEType(mimeJSON),
		),
		h.ReadUser,
	)
}

func (h *Handlers) ReadCategories(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	resp, err := h.client.ListCategories(ctx, videoapi.ListFilter{PageSize: h.settings.DefaultPageSize, PageIndex: 1})
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	page := contextmgr.Pagination{}.Apply(resp, h.settings.DefaultPageSize, 1)
	return jsonContents(req.Params.URI, page)
}

func (h *Handlers) ReadMedia(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entryID, err := idFromURI(req.Params.URI, uriMediaPrefix)
	if err != nil {
		return nil, err
	}
	entry, err := h.client.GetMedia(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("read media %s: %w", entryID, err)
	}
	return jsonContents(req.Params.URI, h.summarize(entry))
}

func (h *Handlers) ReadUser(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	userID, err := idFromURI(req.Params.URI, uriUsersPrefix)
	if err != nil {
		return nil, err
	}
	user, err := h.client.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read user %s: %w", userID, err)
	}
	return jsonContents(req.Params.URI, h.summarize(user))
}

func (h *Handlers) summarize(v any) any {
	if h.settings.DefaultMaxLength <= 0 {
		return v
	}
	return contextmgr.Summarization{}.Apply(v, h.settings.DefaultMaxLength)
}

func idFromURI(uri, prefix string) (string, error) {
	id, ok := strings.CutPrefix(uri, prefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("unsupported resource uri %q", uri)
	}
	return id, nil
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	body, err := render.JSON(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     body,
		},
	}, nil
}
