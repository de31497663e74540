package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/logging"
)

var (
	// ErrInvalidPagination is returned for a page index below 1 or a
	// non-positive page size. No request is issued.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrStaleResult is returned by Apply for a result that was superseded
	// by a later request. The result is discarded.
	ErrStaleResult = errors.New("fetch result superseded by a newer request")
)

// Fetcher performs one page fetch against the listing API.
type Fetcher[R any] interface {
	FetchPage(ctx context.Context, pageIndex, pageSize int) (listing.Page[R], error)
}

// PaginationState is the cursor of the page currently held by a PageStore.
type PaginationState struct {
	PageIndex    int // 1-based
	PageSize     int
	TotalRecords int
}

// First returns the zero-based offset of the first row of the page.
func (p PaginationState) First() int {
	return (p.PageIndex - 1) * p.PageSize
}

// TotalPages returns the number of pages at the current page size. An
// empty listing still has one (empty) page.
func (p PaginationState) TotalPages() int {
	if p.PageSize <= 0 || p.TotalRecords <= 0 {
		return 1
	}
	return (p.TotalRecords + p.PageSize - 1) / p.PageSize
}

// Slot returns the selection slot of the page.
func (p PaginationState) Slot() Slot {
	return Slot{PageIndex: p.PageIndex, PageSize: p.PageSize}
}

// PageIndexForOffset converts a zero-based first-row offset and a page
// size into a 1-based page index.
func PageIndexForOffset(first, rows int) int {
	return first/rows + 1
}

// Request is a fetch issued by Begin. Generation orders requests; only the
// latest one is applied.
type Request struct {
	Generation uint64
	PageIndex  int
	PageSize   int
}

// Result is the completion of a Request.
type Result[R any] struct {
	Request Request
	Page    listing.Page[R]
	Err     error
}

// PageStore owns the records of the current page and its pagination state.
//
// A fetch is split in three steps so it can run off the event loop:
// Begin and Apply mutate the store and must be called from the loop, Run
// only performs I/O. Every Begin supersedes earlier requests; their results
// are discarded by Apply even if they resolve later. In-flight requests are
// never cancelled.
type PageStore[R any] struct {
	fetcher    Fetcher[R]
	state      PaginationState
	records    []R
	loaded     bool
	generation uint64 // last issued
	settled    uint64 // last issued request that completed
	log        zerolog.Logger
}

// NewPageStore creates a store positioned on page 1 with the given page
// size. Nothing is fetched until Begin or FetchPage is called.
func NewPageStore[R any](fetcher Fetcher[R], pageSize int) *PageStore[R] {
	return &PageStore[R]{
		fetcher: fetcher,
		state:   PaginationState{PageIndex: 1, PageSize: pageSize},
		records: []R{},
		log:     logging.Component("pagestore"),
	}
}

// Begin issues a new request for the given page, superseding any request
// still in flight.
func (s *PageStore[R]) Begin(pageIndex, pageSize int) (Request, error) {
	if pageIndex < 1 || pageSize <= 0 {
		return Request{}, fmt.Errorf("%w: page %d, size %d", ErrInvalidPagination, pageIndex, pageSize)
	}

	s.generation++
	req := Request{Generation: s.generation, PageIndex: pageIndex, PageSize: pageSize}
	s.log.Debug().
		Uint64("fetch_generation", req.Generation).
		Int("page_index", pageIndex).
		Int("page_size", pageSize).
		Msg("fetch issued")
	return req, nil
}

// OnPageControlChange handles a paginator event carrying a zero-based first
// row offset and a page size. The page index is derived as
// floor(first/rows)+1 and a fetch for it is issued at the new size.
func (s *PageStore[R]) OnPageControlChange(first, rows int) (Request, error) {
	if first < 0 || rows <= 0 {
		return Request{}, fmt.Errorf("%w: first %d, rows %d", ErrInvalidPagination, first, rows)
	}
	return s.Begin(PageIndexForOffset(first, rows), rows)
}

// Run performs the network call for req. It does not touch store state and
// may be called from any goroutine.
func (s *PageStore[R]) Run(ctx context.Context, req Request) Result[R] {
	ctx = logging.WithPageIndex(logging.WithGeneration(ctx, req.Generation), req.PageIndex)

	page, err := s.fetcher.FetchPage(ctx, req.PageIndex, req.PageSize)
	if err == nil && len(page.Records) > req.PageSize {
		err = &listing.FetchError{
			Kind:      listing.FailurePayload,
			PageIndex: req.PageIndex,
			PageSize:  req.PageSize,
			Err:       fmt.Errorf("received %d records, more than page size", len(page.Records)),
		}
	}
	if err == nil && page.Total < 0 {
		err = &listing.FetchError{
			Kind:      listing.FailurePayload,
			PageIndex: req.PageIndex,
			PageSize:  req.PageSize,
			Err:       fmt.Errorf("negative total %d", page.Total),
		}
	}

	return Result[R]{Request: req, Page: page, Err: err}
}

// Apply commits a completed fetch. A superseded result returns
// ErrStaleResult, a failed one returns its error; neither changes the held
// page or pagination state.
func (s *PageStore[R]) Apply(res Result[R]) error {
	req := res.Request
	if req.Generation != s.generation {
		s.log.Debug().
			Uint64("fetch_generation", req.Generation).
			Uint64("latest_generation", s.generation).
			Msg("discarding superseded fetch result")
		return ErrStaleResult
	}
	s.settled = req.Generation

	if res.Err != nil {
		s.log.Error().Err(res.Err).
			Uint64("fetch_generation", req.Generation).
			Int("page_index", req.PageIndex).
			Int("page_size", req.PageSize).
			Msg("fetch failed, keeping previous page")
		return res.Err
	}

	records := res.Page.Records
	if records == nil {
		records = []R{}
	}

	s.records = records
	s.state = PaginationState{
		PageIndex:    req.PageIndex,
		PageSize:     req.PageSize,
		TotalRecords: res.Page.Total,
	}
	s.loaded = true

	s.log.Debug().
		Uint64("fetch_generation", req.Generation).
		Int("page_index", req.PageIndex).
		Int("records", len(records)).
		Int("total", res.Page.Total).
		Msg("fetch applied")
	return nil
}

// FetchPage fetches and applies a page synchronously.
func (s *PageStore[R]) FetchPage(ctx context.Context, pageIndex, pageSize int) error {
	req, err := s.Begin(pageIndex, pageSize)
	if err != nil {
		return err
	}
	return s.Apply(s.Run(ctx, req))
}

// Records returns a copy of the records of the current page.
func (s *PageStore[R]) Records() []R {
	return slices.Clone(s.records)
}

// State returns the pagination state of the current page.
func (s *PageStore[R]) State() PaginationState {
	return s.state
}

// Loaded reports whether any fetch has been applied yet.
func (s *PageStore[R]) Loaded() bool {
	return s.loaded
}

// Pending reports whether the latest issued request has not completed.
func (s *PageStore[R]) Pending() bool {
	return s.generation != s.settled
}

// Generation returns the generation of the latest issued request.
func (s *PageStore[R]) Generation() uint64 {
	return s.generation
}
