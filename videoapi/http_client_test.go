package videoapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path string
	body map[string]any
}

func newTestServer(t *testing.T, respond func(path string, body map[string]any) any) (*HTTPClient, *[]recordedCall) {
	t.Helper()
	calls := &[]recordedCall{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		*calls = append(*calls, recordedCall{path: r.URL.Path, body: body})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(respond(r.URL.Path, body))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL+"/", 100, "test-ks", 5*time.Second)
	client.now = func() time.Time { return time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC) }
	return client, calls
}

func TestHTTPClientListMedia(t *testing.T) {
	client, calls := newTestServer(t, func(path string, body map[string]any) any {
		return map[string]any{
			"objectType": "KalturaMediaListResponse",
			"objects": []map[string]any{
				{"id": "0_a", "name": "first", "createdAt": 1704067200, "status": "2", "mediaType": 1},
			},
			"totalCount": 41,
		}
	})

	resp, err := client.ListMedia(context.Background(), ListFilter{SearchText: "keynote", CategoryID: 102, PageSize: 5, PageIndex: 2})

	require.NoError(t, err)
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, "0_a", resp.Objects[0].ID)
	assert.Equal(t, int64(1704067200), resp.Objects[0].CreatedAt)
	assert.Equal(t, EntryStatusReady, resp.Objects[0].Status)
	assert.Equal(t, 41, resp.TotalCount)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/api_v3/service/media/action/list", call.path)
	assert.Equal(t, "test-ks", call.body["ks"])
	assert.Equal(t, float64(1), call.body["format"])
	assert.Equal(t, float64(100), call.body["partnerId"])

	filter := call.body["filter"].(map[string]any)
	assert.Equal(t, "keynote", filter["freeText"])
	assert.Equal(t, "102", filter["categoriesIdsMatchOr"])
	assert.NotContains(t, filter, "userIdEqual")

	pager := call.body["pager"].(map[string]any)
	assert.Equal(t, float64(5), pager["pageSize"])
	assert.Equal(t, float64(2), pager["pageIndex"])
}

func TestHTTPClientDefaultPager(t *testing.T) {
	client, calls := newTestServer(t, func(string, map[string]any) any {
		return map[string]any{"objects": []any{}, "totalCount": 0}
	})

	_, err := client.ListUsers(context.Background(), ListFilter{})

	require.NoError(t, err)
	pager := (*calls)[0].body["pager"].(map[string]any)
	assert.Equal(t, float64(DefaultPageSize), pager["pageSize"])
	assert.Equal(t, float64(1), pager["pageIndex"])
}

func TestHTTPClientAPIException(t *testing.T) {
	client, _ := newTestServer(t, func(string, map[string]any) any {
		return map[string]any{
			"objectType": "KalturaAPIException",
			"code":       "ENTRY_ID_NOT_FOUND",
			"message":    "Entry id \"0_missing\" not found",
		}
	})

	entry, err := client.GetMedia(context.Background(), "0_missing")

	assert.Nil(t, entry)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ENTRY_ID_NOT_FOUND", apiErr.Code)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestHTTPClientNonNotFoundException(t *testing.T) {
	client, _ := newTestServer(t, func(string, map[string]any) any {
		return map[string]any{"objectType": "KalturaAPIException", "code": "INVALID_KS", "message": "Invalid KS"}
	})

	_, err := client.GetUser(context.Background(), "alice")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "INVALID_KS")
}

func TestHTTPClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 100, "ks", time.Second)
	_, err := client.GetCategory(context.Background(), 101)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "category.get")
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPClientGetAnalytics(t *testing.T) {
	client, calls := newTestServer(t, func(string, map[string]any) any {
		return map[string]any{
			"objectType": "KalturaReportTable",
			"header":     "object_id,entry_name,count_plays",
			"data":       "0_a,Intro,12;0_b,Keynote,7;",
			"totalCount": 2,
		}
	})

	report, err := client.GetAnalytics(context.Background(), AnalyticsQuery{ReportType: "top_content", EntryID: "0_a", PageSize: 50})

	require.NoError(t, err)
	assert.Equal(t, []string{"object_id", "entry_name", "count_plays"}, report.Headers)
	assert.Equal(t, []map[string]string{
		{"object_id": "0_a", "entry_name": "Intro", "count_plays": "12"},
		{"object_id": "0_b", "entry_name": "Keynote", "count_plays": "7"},
	}, report.Objects)
	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, "2024-03-01", report.FromDate)
	assert.Equal(t, "2024-03-31", report.ToDate)

	call := (*calls)[0]
	assert.Equal(t, "/api_v3/service/report/action/getTable", call.path)
	assert.Equal(t, float64(1), call.body["reportType"])
	assert.Equal(t, "0_a", call.body["objectIds"])
	input := call.body["reportInputFilter"].(map[string]any)
	assert.Equal(t, "20240301", input["fromDay"])
	assert.Equal(t, "20240331", input["toDay"])
}

func TestHTTPClientUnknownReportTypeSkipsRequest(t *testing.T) {
	client, calls := newTestServer(t, func(string, map[string]any) any { return map[string]any{} })

	_, err := client.GetAnalytics(context.Background(), AnalyticsQuery{ReportType: "nope"})

	require.Error(t, err)
	assert.Empty(t, *calls)
}
