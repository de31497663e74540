package browse

import (
	"context"
	"errors"
	"strconv"

	"github.com/colonyops/artview/internal/core/listing"
)

type rec struct {
	ID int
}

func (r rec) Key() string { return strconv.Itoa(r.ID) }

// recs returns n records with ids start, start+1, ...
func recs(start, n int) []rec {
	out := make([]rec, n)
	for i := range out {
		out[i] = rec{ID: start + i}
	}
	return out
}

// pagedFetcher serves a listing of total records with ids 1..total.
type pagedFetcher struct {
	total int
	calls int
	err   error
}

func (f *pagedFetcher) FetchPage(_ context.Context, pageIndex, pageSize int) (listing.Page[rec], error) {
	f.calls++
	if f.err != nil {
		return listing.Page[rec]{}, f.err
	}
	start := (pageIndex-1)*pageSize + 1
	n := max(0, min(pageSize, f.total-start+1))
	return listing.Page[rec]{Records: recs(start, n), Total: f.total}, nil
}

var errBoom = &listing.FetchError{
	Kind: listing.FailureTransport,
	Err:  errors.New("connection refused"),
}
