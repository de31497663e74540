package logging

import "context"

type contextKey string

const (
	generationKey contextKey = "fetch_generation"
	pageIndexKey  contextKey = "page_index"
)

// WithGeneration adds a fetch generation to the context.
func WithGeneration(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, generationKey, gen)
}

// WithPageIndex adds the requested page index to the context.
func WithPageIndex(ctx context.Context, pageIndex int) context.Context {
	return context.WithValue(ctx, pageIndexKey, pageIndex)
}

// GetGeneration retrieves the fetch generation from the context.
// Returns false if not present.
func GetGeneration(ctx context.Context) (uint64, bool) {
	gen, ok := ctx.Value(generationKey).(uint64)
	return gen, ok
}

// GetPageIndex retrieves the page index from the context.
// Returns 0 if not present.
func GetPageIndex(ctx context.Context) int {
	if idx, ok := ctx.Value(pageIndexKey).(int); ok {
		return idx
	}
	return 0
}
