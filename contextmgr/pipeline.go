package contextmgr

import (
	"context"
	"maps"

	"github.com/SaiNageswarS/go-collection-boot/linq"
)

// Strategy is the call contract shared by the three strategies. Each reads
// only its own settings from opts.
type Strategy interface {
	Name() string
	Reshape(data any, opts Options) any
}

var (
	_ Strategy = Pagination{}
	_ Strategy = SelectiveContext{}
	_ Strategy = Summarization{}
)

// Run applies the enabled stages in their fixed order: paginate, then select
// fields on each item, then summarize each item. When the value is not a page
// after pagination, the per-item stages run on the value itself.
func Run(ctx context.Context, data any, opts Options) (any, error) {
	if opts.Paginated() {
		data = Pagination{}.Reshape(data, opts)
	}

	if len(opts.Fields) == 0 && opts.MaxLength <= 0 {
		return data, nil
	}

	if !IsPage(data) {
		return reshapeItem(data, opts), nil
	}

	page := data.(map[string]any)
	items, ok := page[KeyItems].([]any)
	if !ok {
		return data, nil
	}

	reshaped, err := linq.Pipe3(
		linq.FromSlice(ctx, items),

		linq.Select(func(item any) any {
			return SelectiveContext{}.Reshape(item, opts)
		}),

		linq.Select(func(item any) any {
			return Summarization{}.Reshape(item, opts)
		}),

		linq.ToSlice[any](),
	)
	if err != nil {
		return nil, err
	}
	if reshaped == nil {
		reshaped = []any{}
	}

	out := maps.Clone(page)
	out[KeyItems] = reshaped
	out[KeyEntries] = reshaped
	return out, nil
}

func reshapeItem(item any, opts Options) any {
	item = SelectiveContext{}.Reshape(item, opts)
	return Summarization{}.Reshape(item, opts)
}
