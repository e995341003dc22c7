package pagination

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/pkg/kv"
)

// DefaultSize is the page size of a new visitor.
const DefaultSize = 6

// StorageKey is the visitor bucket key holding the grid state.
const StorageKey = "pagination"

var sizes = []int{6, 9, 12}

// Sizes returns the selectable page sizes.
func Sizes() []int { return slices.Clone(sizes) }

// ValidSize reports whether n is selectable.
func ValidSize(n int) bool { return slices.Contains(sizes, n) }

// State is the product grid view of one visitor. Page is 1-indexed.
type State struct {
	Category catalog.Category `json:"category"`
	Search   string           `json:"search"`
	Page     int              `json:"page"`
	Size     int              `json:"size"`
}

// New returns page 1 of all products at the default size.
func New() State {
	return State{Page: 1, Size: DefaultSize, Category: catalog.All}
}

// WithCategory changes the filter. A change resets to page 1.
func (s State) WithCategory(c catalog.Category) State {
	if c == "" {
		c = catalog.All
	}
	if c != s.Category {
		s.Category, s.Page = c, 1
	}
	return s
}

// WithSearch changes the search term. A change resets to page 1.
func (s State) WithSearch(q string) State {
	q = strings.TrimSpace(q)
	if q != s.Search {
		s.Search, s.Page = q, 1
	}
	return s
}

// WithSize changes the page size; unknown sizes fall back to the default.
// A change resets to page 1.
func (s State) WithSize(n int) State {
	if !ValidSize(n) {
		n = DefaultSize
	}
	if n != s.Size {
		s.Size, s.Page = n, 1
	}
	return s
}

// WithPage moves to page n. Pages below 1 become 1; the upper bound is
// applied by Paginate once the item count is known.
func (s State) WithPage(n int) State {
	s.Page = max(n, 1)
	return s
}

// Query is the catalog query of s.
func (s State) Query() catalog.Query {
	return catalog.Query{Category: s.Category, Search: s.Search}
}

func (s State) normalized() State {
	if !ValidSize(s.Size) {
		s.Size = DefaultSize
	}
	if s.Category == "" {
		s.Category = catalog.All
	}
	s.Page = max(s.Page, 1)
	return s
}

// Page is the visible window of a filtered list.
type Page[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int
}

// Paginate clamps s.Page to the available pages and returns the window.
func Paginate[T any](items []T, s State) Page[T] {
	s = s.normalized()
	count := PageCount(len(items), s.Size)
	number := min(s.Page, max(count, 1))
	return Page[T]{
		Items:  VisibleSlice(items, number, s.Size),
		Number: number,
		Size:   s.Size,
		Total:  len(items),
	}
}

// Count is the number of pages.
func (p Page[T]) Count() int { return PageCount(p.Total, p.Size) }

// Hidden reports whether pagination controls should be hidden.
func (p Page[T]) Hidden() bool { return p.Count() <= 1 }

// Empty reports whether the filter matched nothing.
func (p Page[T]) Empty() bool { return p.Total == 0 }

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.Count() }

// Prev is the previous page number, never below 1.
func (p Page[T]) Prev() int { return max(p.Number-1, 1) }

// Next is the next page number, never above Count.
func (p Page[T]) Next() int { return min(p.Number+1, max(p.Count(), 1)) }

// PageCount is ceil(n/size).
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// VisibleSlice returns items [(page-1)*size, page*size) clipped to the
// list. Out of range pages yield an empty slice.
func VisibleSlice[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}

// Load returns the visitor's grid state, or New when none is stored.
func Load(ctx context.Context, b *kv.Bucket) (State, error) {
	s, err := kv.LoadOr(ctx, b, StorageKey, New())
	if err != nil {
		return New(), err
	}
	return s.normalized(), nil
}

// Save persists s.
func Save(ctx context.Context, b *kv.Bucket, s State) error {
	return kv.Save(ctx, b, StorageKey, s.normalized())
}
