package browse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/artview/internal/core/listing"
)

func TestPageStore_FetchPage(t *testing.T) {
	f := &pagedFetcher{total: 25}
	s := NewPageStore[rec](f, 10)

	require.NoError(t, s.FetchPage(context.Background(), 3, 10))

	assert.True(t, s.Loaded())
	assert.Equal(t, recs(21, 5), s.Records())
	assert.Equal(t, PaginationState{PageIndex: 3, PageSize: 10, TotalRecords: 25}, s.State())
	assert.Equal(t, 20, s.State().First())
	assert.Equal(t, 3, s.State().TotalPages())
}

func TestPageStore_FetchPage_NoCaching(t *testing.T) {
	f := &pagedFetcher{total: 25}
	s := NewPageStore[rec](f, 10)

	require.NoError(t, s.FetchPage(context.Background(), 1, 10))
	require.NoError(t, s.FetchPage(context.Background(), 1, 10))

	assert.Equal(t, 2, f.calls)
}

func TestPageStore_FetchPage_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		index int
		size  int
	}{
		{name: "zero index", index: 0, size: 10},
		{name: "negative index", index: -1, size: 10},
		{name: "zero size", index: 1, size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &pagedFetcher{total: 10}
			s := NewPageStore[rec](f, 10)

			err := s.FetchPage(context.Background(), tt.index, tt.size)

			require.ErrorIs(t, err, ErrInvalidPagination)
			assert.Equal(t, 0, f.calls)
		})
	}
}

func TestPageStore_FailedFetchKeepsState(t *testing.T) {
	f := &pagedFetcher{total: 30}
	s := NewPageStore[rec](f, 10)
	tr := NewTracker[rec]()

	require.NoError(t, s.FetchPage(context.Background(), 1, 10))
	tr.Load(s.State().Slot(), s.Records())
	_, _, ok := tr.BulkSelect(3)
	require.True(t, ok)

	beforeRecords := s.Records()
	beforeState := s.State()
	beforeSelected := tr.Selected()
	beforePositions := tr.Positions()
	beforeEpoch := tr.Epoch()

	f.err = errBoom
	err := s.FetchPage(context.Background(), 2, 10)

	require.Error(t, err)
	assert.True(t, listing.IsFetchFailure(err))
	assert.Equal(t, beforeRecords, s.Records())
	assert.Equal(t, beforeState, s.State())
	assert.Equal(t, beforeSelected, tr.Selected())
	assert.True(t, beforePositions.Equal(tr.Positions()))
	assert.Equal(t, beforeEpoch, tr.Epoch())
	assert.False(t, s.Pending())
}

func TestPageStore_PageSizeChangeDerivesIndex(t *testing.T) {
	f := &pagedFetcher{total: 100}
	s := NewPageStore[rec](f, 10)
	require.NoError(t, s.FetchPage(context.Background(), 2, 10))
	require.Equal(t, 10, s.State().First())

	req, err := s.OnPageControlChange(s.State().First(), 20)
	require.NoError(t, err)

	assert.Equal(t, 1, req.PageIndex)
	assert.Equal(t, 20, req.PageSize)

	require.NoError(t, s.Apply(s.Run(context.Background(), req)))
	assert.Equal(t, recs(1, 20), s.Records())
	assert.Equal(t, 0, s.State().First())
}

func TestPageIndexForOffset(t *testing.T) {
	tests := []struct {
		first, rows, want int
	}{
		{first: 0, rows: 10, want: 1},
		{first: 10, rows: 10, want: 2},
		{first: 10, rows: 20, want: 1},
		{first: 25, rows: 5, want: 6},
		{first: 29, rows: 10, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageIndexForOffset(tt.first, tt.rows), "first=%d rows=%d", tt.first, tt.rows)
	}
}

func TestPageStore_OnPageControlChange_Invalid(t *testing.T) {
	s := NewPageStore[rec](&pagedFetcher{}, 10)

	_, err := s.OnPageControlChange(10, 0)
	require.ErrorIs(t, err, ErrInvalidPagination)

	_, err = s.OnPageControlChange(-5, 10)
	require.ErrorIs(t, err, ErrInvalidPagination)
}

func TestPageStore_LatestRequestWins(t *testing.T) {
	f := &pagedFetcher{total: 100}
	s := NewPageStore[rec](f, 10)
	ctx := context.Background()

	older, err := s.Begin(2, 10)
	require.NoError(t, err)
	newer, err := s.Begin(3, 10)
	require.NoError(t, err)
	assert.True(t, s.Pending())

	// The newer request resolves first, the older one afterwards.
	newerRes := s.Run(ctx, newer)
	olderRes := s.Run(ctx, older)

	require.NoError(t, s.Apply(newerRes))
	require.ErrorIs(t, s.Apply(olderRes), ErrStaleResult)

	assert.Equal(t, 3, s.State().PageIndex)
	assert.Equal(t, recs(21, 10), s.Records())
	assert.False(t, s.Pending())
}

func TestPageStore_StaleResultBeforeNewer(t *testing.T) {
	f := &pagedFetcher{total: 100}
	s := NewPageStore[rec](f, 10)
	ctx := context.Background()

	older, _ := s.Begin(2, 10)
	newer, _ := s.Begin(3, 10)

	require.ErrorIs(t, s.Apply(s.Run(ctx, older)), ErrStaleResult)
	assert.False(t, s.Loaded())
	assert.True(t, s.Pending())

	require.NoError(t, s.Apply(s.Run(ctx, newer)))
	assert.Equal(t, 3, s.State().PageIndex)
}

func TestPageStore_OversizedPageIsPayloadFailure(t *testing.T) {
	s := NewPageStore[rec](fetcherFunc(func(_ context.Context, _, _ int) (listing.Page[rec], error) {
		return listing.Page[rec]{Records: recs(1, 6), Total: 6}, nil
	}), 5)

	err := s.FetchPage(context.Background(), 1, 5)

	var fetchErr *listing.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, listing.FailurePayload, fetchErr.Kind)
	assert.False(t, s.Loaded())
}

func TestPaginationState_TotalPages(t *testing.T) {
	assert.Equal(t, 1, PaginationState{PageIndex: 1, PageSize: 10}.TotalPages())
	assert.Equal(t, 1, PaginationState{PageIndex: 1, PageSize: 10, TotalRecords: 10}.TotalPages())
	assert.Equal(t, 2, PaginationState{PageIndex: 1, PageSize: 10, TotalRecords: 11}.TotalPages())
}

type fetcherFunc func(ctx context.Context, pageIndex, pageSize int) (listing.Page[rec], error)

func (f fetcherFunc) FetchPage(ctx context.Context, pageIndex, pageSize int) (listing.Page[rec], error) {
	return f(ctx, pageIndex, pageSize)
}
