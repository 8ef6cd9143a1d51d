package videoapi

// ListResponse is the list envelope returned by every list action.
type ListResponse[T any] struct {
	Objects    []T `json:"objects"`
	TotalCount int `json:"totalCount"`
}

type MediaEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Tags          string `json:"tags,omitempty"`
	CategoriesIDs string `json:"categoriesIds,omitempty"`
	UserID        string `json:"userId,omitempty"`
	MediaType     int    `json:"mediaType"`
	Status        string `json:"status"`
	Duration      int    `json:"duration"`
	Plays         int    `json:"plays"`
	Views         int    `json:"views"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type Category struct {
	ID           int    `json:"id"`
	ParentID     int    `json:"parentId"`
	Depth        int    `json:"depth"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Description  string `json:"description,omitempty"`
	EntriesCount int    `json:"entriesCount"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

type User struct {
	ID            string `json:"id"`
	ScreenName    string `json:"screenName"`
	FullName      string `json:"fullName"`
	Email         string `json:"email,omitempty"`
	Status        int    `json:"status"`
	IsAdmin       bool   `json:"isAdmin"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
	LastLoginTime int64  `json:"lastLoginTime,omitempty"`
}

// AnalyticsReport is a report table with one record per row, keyed by the
// report's column headers.
type AnalyticsReport struct {
	ReportType string              `json:"reportType"`
	FromDate   string              `json:"fromDate"`
	ToDate     string              `json:"toDate"`
	Headers    []string            `json:"headers"`
	Objects    []map[string]string `json:"objects"`
	TotalCount int                 `json:"totalCount"`
}

// Media entry statuses.
const (
	EntryStatusPending  = "4"
	EntryStatusReady    = "2"
	EntryStatusDeleted  = "3"
	EntryStatusModerate = "5"
)

// Media types.
const (
	MediaTypeVideo = 1
	MediaTypeImage = 2
	MediaTypeAudio = 5
)
