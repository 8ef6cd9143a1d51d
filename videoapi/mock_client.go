package videoapi

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MockClient serves a fixed in-memory catalogue. It applies the same filters
// and pager as the platform and is safe for concurrent use.
type MockClient struct {
	media      []MediaEntry
	categories []Category
	users      []User
	now        func() time.Time
}

func NewMockClient() *MockClient {
	return &MockClient{
		media:      fixtureMedia(),
		categories: fixtureCategories(),
		users:      fixtureUsers(),
		now:        time.Now,
	}
}

func (m *MockClient) ListMedia(ctx context.Context, filter ListFilter) (*ListResponse[MediaEntry], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]MediaEntry, 0, len(m.media))
	for _, e := range m.media {
		if filter.SearchText != "" && !containsFold(filter.SearchText, e.Name, e.Description, e.Tags) {
			continue
		}
		if filter.CategoryID > 0 && !slices.Contains(strings.Split(e.CategoriesIDs, ","), strconv.Itoa(filter.CategoryID)) {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		matched = append(matched, e)
	}

	return pageOf(matched, filter), nil
}

func (m *MockClient) GetMedia(ctx context.Context, entryID string) (*MediaEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, e := range m.media {
		if e.ID == entryID {
			return &e, nil
		}
	}
	return nil, &APIError{Code: "ENTRY_ID_NOT_FOUND", Message: fmt.Sprintf("Entry id %q not found", entryID)}
}

func (m *MockClient) ListCategories(ctx context.Context, filter ListFilter) (*ListResponse[Category], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]Category, 0, len(m.categories))
	for _, c := range m.categories {
		if filter.SearchText != "" && !containsFold(filter.SearchText, c.Name, c.FullName, c.Description) {
			continue
		}
		if filter.CategoryID > 0 && c.ParentID != filter.CategoryID {
			continue
		}
		matched = append(matched, c)
	}

	return pageOf(matched, filter), nil
}

func (m *MockClient) GetCategory(ctx context.Context, categoryID int) (*Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range m.categories {
		if c.ID == categoryID {
			return &c, nil
		}
	}
	return nil, &APIError{Code: "CATEGORY_NOT_FOUND", Message: fmt.Sprintf("Category id %d not found", categoryID)}
}

func (m *MockClient) ListUsers(ctx context.Context, filter ListFilter) (*ListResponse[User], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]User, 0, len(m.users))
	for _, u := range m.users {
		if filter.SearchText != "" && !hasPrefixFold(u.ID, filter.SearchText) && !hasPrefixFold(u.ScreenName, filter.SearchText) {
			continue
		}
		if filter.Status != "" && strconv.Itoa(u.Status) != filter.Status {
			continue
		}
		matched = append(matched, u)
	}

	return pageOf(matched, filter), nil
}

func (m *MockClient) GetUser(ctx context.Context, userID string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, &APIError{Code: "INVALID_USER_ID", Message: fmt.Sprintf("Invalid user id %q", userID)}
}

func (m *MockClient) GetAnalytics(ctx context.Context, query AnalyticsQuery) (*AnalyticsReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := reportTypeID(query.ReportType); err != nil {
		return nil, err
	}
	query, err := normalizeDates(query, m.now())
	if err != nil {
		return nil, err
	}

	headers, rows := m.reportTable(query)
	page := pageOf(rows, ListFilter{PageSize: query.PageSize, PageIndex: query.PageIndex})

	return &AnalyticsReport{
		ReportType: query.ReportType,
		FromDate:   query.FromDate,
		ToDate:     query.ToDate,
		Headers:    headers,
		Objects:    page.Objects,
		TotalCount: page.TotalCount,
	}, nil
}

func (m *MockClient) reportTable(query AnalyticsQuery) ([]string, []map[string]string) {
	switch query.ReportType {
	case "top_content", "content_interactions", "content_dropoff":
		headers := []string{"object_id", "entry_name", "count_plays", "count_loads", "sum_time_viewed", "avg_view_drop_off"}
		entries := slices.Clone(m.media)
		slices.SortStableFunc(entries, func(a, b MediaEntry) int { return b.Plays - a.Plays })

		rows := make([]map[string]string, 0, len(entries))
		for _, e := range entries {
			if query.EntryID != "" && e.ID != query.EntryID {
				continue
			}
			rows = append(rows, map[string]string{
				"object_id":         e.ID,
				"entry_name":        e.Name,
				"count_plays":       strconv.Itoa(e.Plays),
				"count_loads":       strconv.Itoa(e.Views),
				"sum_time_viewed":   strconv.FormatFloat(float64(e.Plays*e.Duration)/60*0.6, 'f', 2, 64),
				"avg_view_drop_off": "0.6",
			})
		}
		return headers, rows

	case "user_engagement", "top_contributors":
		headers := []string{"user_id", "screen_name", "count_plays", "count_entries"}
		rows := make([]map[string]string, 0, len(m.users))
		for _, u := range m.users {
			plays, entries := 0, 0
			for _, e := range m.media {
				if e.UserID == u.ID {
					plays += e.Plays
					entries++
				}
			}
			rows = append(rows, map[string]string{
				"user_id":       u.ID,
				"screen_name":   u.ScreenName,
				"count_plays":   strconv.Itoa(plays),
				"count_entries": strconv.Itoa(entries),
			})
		}
		return headers, rows

	default:
		headers := []string{"device", "count_plays", "share"}
		return headers, []map[string]string{
			{"device": "Desktop", "count_plays": "5120", "share": "0.58"},
			{"device": "Mobile", "count_plays": "3010", "share": "0.34"},
			{"device": "Tablet", "count_plays": "705", "share": "0.08"},
		}
	}
}

func pageOf[T any](items []T, filter ListFilter) *ListResponse[T] {
	pageSize, pageIndex := filter.pager()
	start := len(items)
	if pageIndex-1 < len(items)/pageSize+1 {
		start = min((pageIndex-1)*pageSize, len(items))
	}
	end := start + min(pageSize, len(items)-start)

	return &ListResponse[T]{
		Objects:    slices.Clone(items[start:end]),
		TotalCount: len(items),
	}
}

func containsFold(needle string, haystacks ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
