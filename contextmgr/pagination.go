package contextmgr

import "math"

const DefaultPageSize = 10

// Keys of a reshaped page. Every value is published under a camel-style and a
// snake-style key because both conventions have consumers.
const (
	KeyItems           = "items"
	KeyEntries         = "entries"
	KeyTotalCount      = "totalCount"
	KeyTotalCountSnake = "total_count"
	KeyPageSize        = "pageSize"
	KeyPageSizeSnake   = "page_size"
	KeyPageIndex       = "pageIndex"
	KeyPage            = "page"
	KeyTotalPages      = "totalPages"
	KeyTotalPagesSnake = "total_pages"
)

// Pagination slices a page-shaped value down to a single window.
type Pagination struct{}

func (Pagination) Name() string { return "pagination" }

// Reshape paginates with the page and page size carried by opts.
func (p Pagination) Reshape(data any, opts Options) any {
	return p.Apply(data, opts.PageSize, opts.Page)
}

// Apply returns the requested page of data as a reshaped page, or data itself
// when it is neither a page-shaped record nor a sequence. A page outside the
// data's range yields empty items. page < 1 is treated as 1 and pageSize <= 0
// as DefaultPageSize.
func (Pagination) Apply(data any, pageSize, page int) any {
	pageSize, page = pageArgs(pageSize, page)

	items, total, ok := pageContents(data)
	if !ok {
		return data
	}

	start, ok := offset(page, pageSize)
	if !ok || start > total {
		start = total
	}
	end := start + min(pageSize, total-start)

	return newPage(sliceItems(items, start, end), total, pageSize, page)
}

// Window wraps data whose items already hold the requested page, as returned
// by an upstream pager, into a reshaped page with the given page index. At most
// pageSize items are kept.
func (Pagination) Window(data any, pageSize, page int) any {
	pageSize, page = pageArgs(pageSize, page)

	items, total, ok := pageContents(data)
	if !ok {
		return data
	}

	return newPage(sliceItems(items, 0, pageSize), total, pageSize, page)
}

func pageArgs(pageSize, page int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return pageSize, page
}

// pageContents returns the items and total count of a page-shaped record or
// sequence.
func pageContents(data any) (items any, total int, ok bool) {
	shape := Inspect(data)
	switch {
	case shape.Kind == Sequence:
		return data, shape.Len(), true
	case shape.IsRecord():
		it, count, ok := shape.pageMembers()
		if !ok {
			return nil, 0, false
		}
		if total, ok = toInt(count); !ok {
			total = Inspect(it).Len()
		}
		return it, max(total, 0), true
	}
	return nil, 0, false
}

// offset returns (page-1)*pageSize and false when the window would not fit
// in an int.
func offset(page, pageSize int) (int, bool) {
	if page-1 > (math.MaxInt-pageSize)/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

func newPage(window any, total, pageSize, page int) map[string]any {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return map[string]any{
		KeyItems:           window,
		KeyEntries:         window,
		KeyTotalCount:      total,
		KeyTotalCountSnake: total,
		KeyPageSize:        pageSize,
		KeyPageSizeSnake:   pageSize,
		KeyPageIndex:       page,
		KeyPage:            page,
		KeyTotalPages:      totalPages,
		KeyTotalPagesSnake: totalPages,
	}
}

// IsPage reports whether v is a reshaped page produced by Pagination.
func IsPage(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, k := range []string{KeyItems, KeyEntries, KeyTotalPages} {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

// sliceItems returns items[start:end] as []any with bounds clamped to the
// collection's length. A collection that cannot be sliced is returned whole.
func sliceItems(items any, start, end int) any {
	shape := Inspect(items)
	if shape.Kind != Sequence {
		if items == nil {
			return []any{}
		}
		return items
	}

	n := shape.Len()
	start = min(max(start, 0), n)
	end = max(min(end, n), start)

	out := make([]any, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, shape.value.Index(i).Interface())
	}
	return out
}
