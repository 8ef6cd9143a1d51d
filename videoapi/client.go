// Package videoapi is the client side of the video platform's administrative
// API: media entries, categories, users and analytics reports.
package videoapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// DefaultPageSize is the platform's page size when a request sets none.
const DefaultPageSize = 30

var ErrNotFound = errors.New("not found")

type Client interface {
	ListMedia(ctx context.Context, filter ListFilter) (*ListResponse[MediaEntry], error)
	GetMedia(ctx context.Context, entryID string) (*MediaEntry, error)
	ListCategories(ctx context.Context, filter ListFilter) (*ListResponse[Category], error)
	GetCategory(ctx context.Context, categoryID int) (*Category, error)
	ListUsers(ctx context.Context, filter ListFilter) (*ListResponse[User], error)
	GetUser(ctx context.Context, userID string) (*User, error)
	GetAnalytics(ctx context.Context, query AnalyticsQuery) (*AnalyticsReport, error)
}

// ListFilter narrows a list request. Zero values are not sent.
type ListFilter struct {
	SearchText string
	CategoryID int
	UserID     string
	Status     string
	PageSize   int
	PageIndex  int
}

func (f ListFilter) pager() (pageSize, pageIndex int) {
	pageSize, pageIndex = f.PageSize, f.PageIndex
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageIndex <= 0 {
		pageIndex = 1
	}
	return pageSize, pageIndex
}

// AnalyticsQuery selects a report table. Dates are YYYY-MM-DD.
type AnalyticsQuery struct {
	ReportType string
	FromDate   string
	ToDate     string
	EntryID    string
	PageSize   int
	PageIndex  int
}

// reportTypes maps report names to the platform's report type ids.
var reportTypes = map[string]int{
	"top_content":          1,
	"content_dropoff":      2,
	"content_interactions": 3,
	"top_contributors":     5,
	"user_engagement":      11,
	"platforms":            21,
	"operating_system":     22,
	"browsers":             23,
}

// ReportTypes returns the supported report names in sorted order.
func ReportTypes() []string {
	names := make([]string, 0, len(reportTypes))
	for name := range reportTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func reportTypeID(name string) (int, error) {
	id, ok := reportTypes[name]
	if !ok {
		return 0, fmt.Errorf("unknown report type %q", name)
	}
	return id, nil
}

// APIError is an exception returned by the platform.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches ErrNotFound for the platform's not-found codes.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && notFoundCodes[e.Code]
}

var notFoundCodes = map[string]bool{
	"ENTRY_ID_NOT_FOUND":    true,
	"CATEGORY_NOT_FOUND":    true,
	"INVALID_USER_ID":       true,
	"USER_NOT_FOUND":        true,
	"INVALID_OBJECT_ID":     true,
	"INVALID_ENTRY_ID":      true,
	"CATEGORY_ID_NOT_FOUND": true,
}
