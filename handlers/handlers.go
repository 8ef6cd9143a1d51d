// Package handlers exposes the video platform as MCP tools, resources and
// prompts. Every response is bounded by the contextmgr pipeline before it is
// serialised.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/video-mcp/contextmgr"
	"github.com/SaiNageswarS/video-mcp/prompts"
	"github.com/SaiNageswarS/video-mcp/render"
	"github.com/SaiNageswarS/video-mcp/videoapi"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Settings bound the size of every response.
type Settings struct {
	DefaultPageSize  int
	MaxFetchSize     int
	DefaultMaxLength int
}

type Handlers struct {
	client   videoapi.Client
	settings Settings
	catalog  *prompts.Catalog
}

func New(client videoapi.Client, settings Settings, catalog *prompts.Catalog) *Handlers {
	if settings.DefaultPageSize <= 0 {
		settings.DefaultPageSize = contextmgr.DefaultPageSize
	}
	if settings.MaxFetchSize <= 0 {
		settings.MaxFetchSize = 500
	}
	return &Handlers{client: client, settings: settings, catalog: catalog}
}

// fetchFunc loads the raw value for a tool call. extras are merged into a
// single-record result after reshaping and are not subject to field selection.
type fetchFunc func(ctx context.Context, opts contextmgr.Options) (data any, extras map[string]any, err error)

// toolRun describes one tool invocation.
type toolRun struct {
	name     string
	title    string
	paginate bool
	fetch    fetchFunc
}

// run parses the reshaping options, fetches, reshapes and renders. Errors are
// returned as tool error results so the client can read them.
func (h *Handlers) run(ctx context.Context, req mcp.CallToolRequest, r toolRun) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()
	start := time.Now()

	fail := func(err error) (*mcp.CallToolResult, error) {
		logger.Error("Tool call failed",
			zap.String("tool", r.name),
			zap.String("call_id", callID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return toolError(r.name, err), nil
	}

	opts, err := contextmgr.ParseOptions(req.GetArguments())
	if err != nil {
		return fail(err)
	}
	format, err := render.ParseFormat(req.GetString(argFormat, ""))
	if err != nil {
		return fail(&contextmgr.ConfigurationError{Key: argFormat, Reason: err.Error()})
	}

	if r.paginate {
		opts = opts.WithPageDefaults(h.settings.DefaultPageSize)
	} else {
		opts.Page, opts.PageSize = 0, 0
	}
	opts = opts.WithMaxLengthDefault(h.settings.DefaultMaxLength)

	data, extras, err := r.fetch(ctx, opts)
	if err != nil {
		return fail(err)
	}

	// The upstream pager already cut the requested window, so only the
	// per-item stages run locally.
	shapeOpts := opts
	if r.paginate {
		data = contextmgr.Pagination{}.Window(data, opts.PageSize, opts.Page)
		shapeOpts.Page, shapeOpts.PageSize = 0, 0
	}

	shaped, err := contextmgr.Run(ctx, data, shapeOpts)
	if err != nil {
		return fail(err)
	}
	if len(extras) > 0 {
		if record, ok := contextmgr.ToRecord(shaped); ok {
			maps.Copy(record, extras)
			shaped = record
		}
	}

	body, err := render.Render(format, r.title, shaped)
	if err != nil {
		return fail(err)
	}

	logger.Info("Tool call completed",
		zap.String("tool", r.name),
		zap.String("call_id", callID),
		zap.Int("page", opts.Page),
		zap.Int("page_size", opts.PageSize),
		zap.Int("fields", len(opts.Fields)),
		zap.Int("max_length", opts.MaxLength),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)))

	return mcp.NewToolResultText(body), nil
}

// upstreamPage checks that the requested page fits in one upstream request.
func (h *Handlers) upstreamPage(opts contextmgr.Options) (pageSize, pageIndex int, err error) {
	if opts.PageSize > h.settings.MaxFetchSize {
		return 0, 0, &contextmgr.ConfigurationError{
			Key:    contextmgr.ArgPageSize,
			Reason: fmt.Sprintf("must not exceed %d, got %d", h.settings.MaxFetchSize, opts.PageSize),
		}
	}
	return opts.PageSize, opts.Page, nil
}

func toolError(tool string, err error) *mcp.CallToolResult {
	var (
		cfgErr *contextmgr.ConfigurationError
		apiErr *videoapi.APIError
	)

	switch {
	case errors.As(err, &cfgErr):
		return mcp.NewToolResultError(err.Error())
	case errors.Is(err, videoapi.ErrNotFound):
		return mcp.NewToolResultError("Not found: " + err.Error())
	case errors.As(err, &apiErr):
		return mcp.NewToolResultError(fmt.Sprintf("%s rejected by the video platform: %s", tool, err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %s", tool, err))
	}
}
