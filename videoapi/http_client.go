package videoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	formatJSON       = 1
	exceptionType    = "KalturaAPIException"
	maxResponseBytes = 16 << 20
)

// HTTPClient calls the platform's JSON API. Every request carries the
// configured session token.
type HTTPClient struct {
	serviceURL   string
	partnerID    int
	sessionToken string
	httpClient   *http.Client
	now          func() time.Time
}

func NewHTTPClient(serviceURL string, partnerID int, sessionToken string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		serviceURL:   strings.TrimRight(serviceURL, "/"),
		partnerID:    partnerID,
		sessionToken: sessionToken,
		httpClient:   &http.Client{Timeout: timeout},
		now:          time.Now,
	}
}

func (c *HTTPClient) ListMedia(ctx context.Context, filter ListFilter) (*ListResponse[MediaEntry], error) {
	f := map[string]any{"objectType": "KalturaMediaEntryFilter"}
	if filter.SearchText != "" {
		f["freeText"] = filter.SearchText
	}
	if filter.CategoryID > 0 {
		f["categoriesIdsMatchOr"] = strconv.Itoa(filter.CategoryID)
	}
	if filter.UserID != "" {
		f["userIdEqual"] = filter.UserID
	}
	if filter.Status != "" {
		f["statusEqual"] = filter.Status
	}

	out := &ListResponse[MediaEntry]{}
	err := c.call(ctx, "media", "list", map[string]any{"filter": f, "pager": pagerParams(filter)}, out)
	return out, err
}

func (c *HTTPClient) GetMedia(ctx context.Context, entryID string) (*MediaEntry, error) {
	out := &MediaEntry{}
	if err := c.call(ctx, "media", "get", map[string]any{"entryId": entryID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context, filter ListFilter) (*ListResponse[Category], error) {
	f := map[string]any{"objectType": "KalturaCategoryFilter"}
	if filter.SearchText != "" {
		f["freeText"] = filter.SearchText
	}
	if filter.CategoryID > 0 {
		f["parentIdEqual"] = filter.CategoryID
	}

	out := &ListResponse[Category]{}
	err := c.call(ctx, "category", "list", map[string]any{"filter": f, "pager": pagerParams(filter)}, out)
	return out, err
}

func (c *HTTPClient) GetCategory(ctx context.Context, categoryID int) (*Category, error) {
	out := &Category{}
	if err := c.call(ctx, "category", "get", map[string]any{"id": categoryID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, filter ListFilter) (*ListResponse[User], error) {
	f := map[string]any{"objectType": "KalturaUserFilter"}
	if filter.SearchText != "" {
		f["idOrScreenNameStartsWith"] = filter.SearchText
	}
	if filter.Status != "" {
		f["statusEqual"] = filter.Status
	}

	out := &ListResponse[User]{}
	err := c.call(ctx, "user", "list", map[string]any{"filter": f, "pager": pagerParams(filter)}, out)
	return out, err
}

func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*User, error) {
	out := &User{}
	if err := c.call(ctx, "user", "get", map[string]any{"userId": userID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetAnalytics(ctx context.Context, query AnalyticsQuery) (*AnalyticsReport, error) {
	typeID, err := reportTypeID(query.ReportType)
	if err != nil {
		return nil, err
	}
	query, err = normalizeDates(query, c.now())
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"reportType": typeID,
		"reportInputFilter": map[string]any{
			"objectType": "KalturaReportInputFilter",
			"fromDay":    reportDay(query.FromDate),
			"toDay":      reportDay(query.ToDate),
		},
		"pager": pagerParams(ListFilter{PageSize: query.PageSize, PageIndex: query.PageIndex}),
	}
	if query.EntryID != "" {
		params["objectIds"] = query.EntryID
	}

	var table struct {
		Header     string `json:"header"`
		Data       string `json:"data"`
		TotalCount int    `json:"totalCount"`
	}
	if err := c.call(ctx, "report", "getTable", params, &table); err != nil {
		return nil, err
	}

	headers, rows := parseReportTable(table.Header, table.Data)
	return &AnalyticsReport{
		ReportType: query.ReportType,
		FromDate:   query.FromDate,
		ToDate:     query.ToDate,
		Headers:    headers,
		Objects:    rows,
		TotalCount: table.TotalCount,
	}, nil
}

func pagerParams(filter ListFilter) map[string]any {
	pageSize, pageIndex := filter.pager()
	return map[string]any{
		"objectType": "KalturaFilterPager",
		"pageSize":   pageSize,
		"pageIndex":  pageIndex,
	}
}

// call posts params to service/action and decodes the result into out.
// Platform exceptions are returned as *APIError.
func (c *HTTPClient) call(ctx context.Context, service, action string, params map[string]any, out any) error {
	body := map[string]any{
		"format":    formatJSON,
		"ks":        c.sessionToken,
		"partnerId": c.partnerID,
	}
	maps.Copy(body, params)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s.%s: encode request: %w", service, action, err)
	}

	url := fmt.Sprintf("%s/api_v3/service/%s/action/%s", c.serviceURL, service, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s.%s: %w", service, action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", service, action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s.%s: read response: %w", service, action, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s.%s: unexpected status %d", service, action, resp.StatusCode)
	}

	var exception struct {
		ObjectType string `json:"objectType"`
		Code       string `json:"code"`
		Message    string `json:"message"`
	}
	// results that are not objects (plain strings, numbers) cannot be exceptions
	if json.Unmarshal(raw, &exception) == nil && exception.ObjectType == exceptionType {
		return &APIError{Code: exception.Code, Message: exception.Message}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s.%s: decode response: %w", service, action, err)
	}
	return nil
}
