package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/video-mcp/contextmgr"
	"github.com/SaiNageswarS/video-mcp/videoapi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolListMedia      = "list_media"
	ToolGetMedia       = "get_media"
	ToolListCategories = "list_categories"
	ToolListUsers      = "list_users"
	ToolGetUser        = "get_user"
	ToolGetAnalytics   = "get_analytics"
)

const (
	argSearch           = "search"
	argCategoryID       = "category_id"
	argUserID           = "user_id"
	argEntryID          = "entry_id"
	argStatus           = "status"
	argIncludeAnalytics = "include_analytics"
	argReportType       = "report_type"
	argFromDate         = "from_date"
	argToDate           = "to_date"
	argFormat           = "format"
)

// engagementReport is attached to get_media when analytics are requested.
const engagementReport = "content_interactions"

func pagingParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber(contextmgr.ArgPage,
			mcp.Description("1-based page number of the result window (default 1)"),
			mcp.Min(1),
		),
		mcp.WithNumber(contextmgr.ArgPageSize,
			mcp.Description("Number of items per page"),
			mcp.Min(1),
		),
	}
}

func shapingParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithArray(contextmgr.ArgFields,
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Only return these fields of each item, e.g. [\"id\",\"name\",\"createdAt\"]"),
		),
		mcp.WithNumber(contextmgr.ArgMaxLength,
			mcp.Description("Truncate text values longer than this many characters"),
			mcp.Min(1),
		),
		mcp.WithString(argFormat,
			mcp.Description("Output format"),
			mcp.Enum("json", "markdown"),
		),
	}
}

func newTool(name, description string, groups ...[]mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	for _, g := range groups {
		opts = append(opts, g...)
	}
	return mcp.NewTool(name, opts...)
}

// Tools returns every tool with its handler.
func (h *Handlers) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: newTool(ToolListMedia,
				"Lists media entries in the video library. Results are paginated; use fields and max_length to keep responses small.",
				[]mcp.ToolOption{
					mcp.WithString(argSearch, mcp.Description("Free text matched against name, description and tags")),
					mcp.WithNumber(argCategoryID, mcp.Description("Only entries in this category")),
					mcp.WithString(argUserID, mcp.Description("Only entries owned by this user")),
					mcp.WithString(argStatus, mcp.Description("Entry status code, e.g. 2 for ready")),
				},
				pagingParams(), shapingParams()),
			Handler: h.ListMedia,
		},
		{
			Tool: newTool(ToolGetMedia,
				"Returns a single media entry, optionally with its engagement analytics.",
				[]mcp.ToolOption{
					mcp.WithString(argEntryID, mcp.Description("Media entry id"), mcp.Required()),
					mcp.WithBoolean(argIncludeAnalytics, mcp.Description("Attach the entry's engagement report")),
				},
				shapingParams()),
			Handler: h.GetMedia,
		},
		{
			Tool: newTool(ToolListCategories,
				"Lists the category tree of the video library. Results are paginated.",
				[]mcp.ToolOption{
					mcp.WithString(argSearch, mcp.Description("Free text matched against category names")),
				},
				pagingParams(), shapingParams()),
			Handler: h.ListCategories,
		},
		{
			Tool: newTool(ToolListUsers,
				"Lists partner users. Results are paginated.",
				[]mcp.ToolOption{
					mcp.WithString(argSearch, mcp.Description("Free text matched against id, screen name, full name and email")),
				},
				pagingParams(), shapingParams()),
			Handler: h.ListUsers,
		},
		{
			Tool: newTool(ToolGetUser,
				"Returns a single partner user.",
				[]mcp.ToolOption{
					mcp.WithString(argUserID, mcp.Description("User id"), mcp.Required()),
				},
				shapingParams()),
			Handler: h.GetUser,
		},
		{
			Tool: newTool(ToolGetAnalytics,
				"Returns an analytics report table with one item per row. Dates default to the last 30 days.",
				[]mcp.ToolOption{
					mcp.WithString(argReportType,
						mcp.Description("Report to run"),
						mcp.Enum(videoapi.ReportTypes()...),
						mcp.Required(),
					),
					mcp.WithString(argFromDate, mcp.Description("Start date, YYYY-MM-DD")),
					mcp.WithString(argToDate, mcp.Description("End date, YYYY-MM-DD")),
					mcp.WithString(argEntryID, mcp.Description("Restrict the report to one media entry")),
				},
				pagingParams(), shapingParams()),
			Handler: h.GetAnalytics,
		},
	}
}

func (h *Handlers) ListMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:     ToolListMedia,
		title:    "Media entries",
		paginate: true,
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			pageSize, pageIndex, err := h.upstreamPage(opts)
			if err != nil {
				return nil, nil, err
			}
			categoryID, err := intArg(req, argCategoryID)
			if err != nil {
				return nil, nil, err
			}
			resp, err := h.client.ListMedia(ctx, videoapi.ListFilter{
				SearchText: req.GetString(argSearch, ""),
				CategoryID: categoryID,
				UserID:     req.GetString(argUserID, ""),
				Status:     req.GetString(argStatus, ""),
				PageSize:   pageSize,
				PageIndex:  pageIndex,
			})
			return resp, nil, err
		},
	})
}

func (h *Handlers) GetMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:  ToolGetMedia,
		title: "Media entry",
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			entryID, err := requiredArg(req, argEntryID)
			if err != nil {
				return nil, nil, err
			}

			if !req.GetBool(argIncludeAnalytics, false) {
				entry, err := h.client.GetMedia(ctx, entryID)
				return entry, nil, err
			}

			entryCh := async.Go(func() (*videoapi.MediaEntry, error) {
				return h.client.GetMedia(ctx, entryID)
			})
			reportCh := async.Go(func() (*videoapi.AnalyticsReport, error) {
				return h.client.GetAnalytics(ctx, videoapi.AnalyticsQuery{
					ReportType: engagementReport,
					EntryID:    entryID,
				})
			})

			entry, err := async.Await(entryCh)
			report, reportErr := async.Await(reportCh)
			if err != nil {
				return nil, nil, err
			}

			// A missing report does not fail the entry lookup.
			if reportErr != nil {
				return entry, map[string]any{"analytics_error": reportErr.Error()}, nil
			}
			rows, err := h.boundRows(ctx, report.Objects, opts)
			if err != nil {
				return nil, nil, err
			}
			return entry, map[string]any{"analytics": rows}, nil
		},
	})
}

func (h *Handlers) ListCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:     ToolListCategories,
		title:    "Categories",
		paginate: true,
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			pageSize, pageIndex, err := h.upstreamPage(opts)
			if err != nil {
				return nil, nil, err
			}
			resp, err := h.client.ListCategories(ctx, videoapi.ListFilter{
				SearchText: req.GetString(argSearch, ""),
				PageSize:   pageSize,
				PageIndex:  pageIndex,
			})
			return resp, nil, err
		},
	})
}

func (h *Handlers) ListUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:     ToolListUsers,
		title:    "Users",
		paginate: true,
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			pageSize, pageIndex, err := h.upstreamPage(opts)
			if err != nil {
				return nil, nil, err
			}
			resp, err := h.client.ListUsers(ctx, videoapi.ListFilter{
				SearchText: req.GetString(argSearch, ""),
				PageSize:   pageSize,
				PageIndex:  pageIndex,
			})
			return resp, nil, err
		},
	})
}

func (h *Handlers) GetUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:  ToolGetUser,
		title: "User",
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			userID, err := requiredArg(req, argUserID)
			if err != nil {
				return nil, nil, err
			}
			user, err := h.client.GetUser(ctx, userID)
			return user, nil, err
		},
	})
}

func (h *Handlers) GetAnalytics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, req, toolRun{
		name:     ToolGetAnalytics,
		title:    "Analytics: " + req.GetString(argReportType, ""),
		paginate: true,
		fetch: func(ctx context.Context, opts contextmgr.Options) (any, map[string]any, error) {
			reportType, err := requiredArg(req, argReportType)
			if err != nil {
				return nil, nil, err
			}
			pageSize, pageIndex, err := h.upstreamPage(opts)
			if err != nil {
				return nil, nil, err
			}
			report, err := h.client.GetAnalytics(ctx, videoapi.AnalyticsQuery{
				ReportType: reportType,
				FromDate:   req.GetString(argFromDate, ""),
				ToDate:     req.GetString(argToDate, ""),
				EntryID:    req.GetString(argEntryID, ""),
				PageSize:   pageSize,
				PageIndex:  pageIndex,
			})
			if err != nil {
				return nil, nil, err
			}
			return report, map[string]any{
				"reportType": report.ReportType,
				"fromDate":   report.FromDate,
				"toDate":     report.ToDate,
				"headers":    report.Headers,
			}, nil
		},
	})
}

// boundRows keeps the first page of report rows, truncated like the entry.
func (h *Handlers) boundRows(ctx context.Context, rows []map[string]string, opts contextmgr.Options) (any, error) {
	page, err := contextmgr.Run(ctx, rows, contextmgr.Options{
		Page:      1,
		PageSize:  h.settings.DefaultPageSize,
		MaxLength: opts.MaxLength,
	})
	if err != nil {
		return nil, err
	}
	return page.(map[string]any)[contextmgr.KeyItems], nil
}

func requiredArg(req mcp.CallToolRequest, key string) (string, error) {
	v, err := req.RequireString(key)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", &contextmgr.ConfigurationError{Key: key, Reason: "a non-empty string is required"}
	}
	return strings.TrimSpace(v), nil
}

// intArg reads an optional integer argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, &contextmgr.ConfigurationError{Key: key, Reason: fmt.Sprintf("expected an integer, got %v", v)}
		}
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, &contextmgr.ConfigurationError{Key: key, Reason: fmt.Sprintf("expected an integer, got %v", raw)}
}
