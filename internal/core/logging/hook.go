package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts fetch_generation and page_index from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if gen, ok := GetGeneration(ctx); ok {
		e.Uint64(string(generationKey), gen)
	}

	if idx := GetPageIndex(ctx); idx > 0 {
		e.Int(string(pageIndexKey), idx)
	}
}
