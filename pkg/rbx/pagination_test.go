package rbx_test

import (
	"context"
	"testing"

	"github.com/rbxweb/rbxweb/pkg/rbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResource struct {
	ID   int64
	Name string
}

func cursor(s string) *string {
	return &s
}

// newTestLister serves pages keyed by cursor; the empty cursor is the first
// page.
func newTestLister(pages map[string]*rbx.Page[testResource]) rbx.PageLister[testResource] {
	return rbx.PageListerFunc[testResource](func(ctx context.Context, params *rbx.QueryParams) (*rbx.Page[testResource], error) {
		key := ""
		if params != nil {
			key = params.Cursor
		}

		page, ok := pages[key]
		if !ok {
			return &rbx.Page[testResource]{Data: []testResource{}}, nil
		}

		return page, nil
	})
}

func twoPageLister() rbx.PageLister[testResource] {
	return newTestLister(map[string]*rbx.Page[testResource]{
		"": {
			NextPageCursor: cursor("page2"),
			Data: []testResource{
				{ID: 1, Name: "Resource 1"},
				{ID: 2, Name: "Resource 2"},
			},
		},
		"page2": {
			PreviousPageCursor: cursor(""),
			Data: []testResource{
				{ID: 3, Name: "Resource 3"},
			},
		},
	})
}

func TestPageIterator_HasNext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	iterator := rbx.NewPageIterator(ctx, twoPageLister(), nil)

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), item1.ID)

	assert.True(t, iterator.HasNext())

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2), item2.ID)

	// Crosses the page boundary
	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(3), item3.ID)

	assert.False(t, iterator.HasNext())
}

func TestPageIterator_NextPastEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lister := newTestLister(map[string]*rbx.Page[testResource]{
		"": {Data: []testResource{{ID: 1, Name: "only"}}},
	})

	iterator := rbx.NewPageIterator(ctx, lister, nil)

	_, err := iterator.Next()
	require.NoError(t, err)

	_, err = iterator.Next()
	require.ErrorIs(t, err, rbx.ErrNoMoreItems)
}

func TestPageIterator_EmptyListing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lister := newTestLister(map[string]*rbx.Page[testResource]{})

	iterator := rbx.NewPageIterator(ctx, lister, nil)

	assert.False(t, iterator.HasNext())

	_, err := iterator.Next()
	require.ErrorIs(t, err, rbx.ErrNoMoreItems)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	all, err := rbx.FetchAllPages(ctx, twoPageLister(), nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestFetchAllPages_MaxPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Listing that never terminates: every page points at itself.
	looping := newTestLister(map[string]*rbx.Page[testResource]{
		"": {
			NextPageCursor: cursor("loop"),
			Data:           []testResource{{ID: 1}},
		},
		"loop": {
			NextPageCursor: cursor("loop"),
			Data:           []testResource{{ID: 2}},
		},
	})

	all, err := rbx.FetchAllPages(ctx, looping, nil, &rbx.PaginationOptions{MaxPages: 3})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	empty := ""

	assert.False(t, (&rbx.Page[testResource]{}).HasNext())
	assert.False(t, (&rbx.Page[testResource]{NextPageCursor: &empty}).HasNext())
	assert.True(t, (&rbx.Page[testResource]{NextPageCursor: cursor("next")}).HasNext())
}
