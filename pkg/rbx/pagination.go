package rbx

import (
	"context"
	"fmt"
)

// PageLister fetches one page of a cursor-paginated listing. Resource client
// list methods satisfy this via PageListerFunc, e.g.:
//
//	lister := rbx.PageListerFunc[rbx.Badge](func(ctx context.Context, params *rbx.QueryParams) (*rbx.Page[rbx.Badge], error) {
//	    return client.Badges().ListForUser(ctx, userID, params)
//	})
type PageLister[T any] interface {
	ListPage(ctx context.Context, params *QueryParams) (*Page[T], error)
}

// PageListerFunc adapts a function to the PageLister interface.
type PageListerFunc[T any] func(ctx context.Context, params *QueryParams) (*Page[T], error)

// ListPage implements PageLister.
func (f PageListerFunc[T]) ListPage(ctx context.Context, params *QueryParams) (*Page[T], error) {
	return f(ctx, params)
}

// PageIterator walks a cursor-paginated listing item by item, fetching pages
// lazily.
type PageIterator[T any] struct {
	ctx       context.Context
	lister    PageLister[T]
	params    *QueryParams
	current   []T
	index     int
	next      *string
	started   bool
	exhausted bool
}

// NewPageIterator creates an iterator over a cursor-paginated listing.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], params *QueryParams) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		params: params.Clone(),
	}
}

// HasNext reports whether another item is available. It may fetch the next
// page to find out.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.current) {
		return true
	}

	if it.exhausted {
		return false
	}

	err := it.fetch()
	if err != nil {
		// Surface the error on the subsequent Next call.
		return true
	}

	return it.index < len(it.current)
}

// Next returns the next item in the listing.
func (it *PageIterator[T]) Next() (*T, error) {
	if it.index >= len(it.current) {
		if it.exhausted {
			return nil, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			return nil, err
		}

		if it.index >= len(it.current) {
			return nil, ErrNoMoreItems
		}
	}

	item := &it.current[it.index]
	it.index++

	return item, nil
}

// fetch loads the next page and resets the read position.
func (it *PageIterator[T]) fetch() error {
	if it.started && it.next == nil {
		it.exhausted = true

		return nil
	}

	params := it.params.Clone()
	if it.started && it.next != nil {
		params.Cursor = *it.next
	}

	page, err := it.lister.ListPage(it.ctx, params)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	it.started = true
	it.current = page.Data
	it.index = 0

	if page.HasNext() {
		it.next = page.NextPageCursor
	} else {
		it.next = nil
		if len(page.Data) == 0 {
			it.exhausted = true
		}
	}

	return nil
}

// PaginationOptions bounds eager page collection.
type PaginationOptions struct {
	// MaxPages caps how many pages FetchAllPages will request. Zero means
	// no cap.
	MaxPages int

	// Limit is the per-page size to request.
	Limit int
}

// DefaultPaginationOptions returns sensible collection bounds.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		MaxPages: 50,
		Limit:    100,
	}
}

// FetchAllPages eagerly collects every item of a cursor-paginated listing.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], params *QueryParams, opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	params = params.Clone()
	if opts.Limit > 0 {
		params.Limit = opts.Limit
	}

	var all []T

	for pages := 0; opts.MaxPages == 0 || pages < opts.MaxPages; pages++ {
		page, err := lister.ListPage(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", pages+1, err)
		}

		all = append(all, page.Data...)

		if !page.HasNext() {
			return all, nil
		}

		params.Cursor = *page.NextPageCursor
	}

	return all, nil
}
