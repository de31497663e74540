package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "generation and page index",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithGeneration(ctx, 7)
				ctx = WithPageIndex(ctx, 2)
				return ctx
			},
			wantKeys: []string{"fetch_generation", "page_index"},
		},
		{
			name: "only generation",
			setupCtx: func() context.Context {
				return WithGeneration(context.Background(), 1)
			},
			wantKeys:  []string{"fetch_generation"},
			wantEmpty: []string{"page_index"},
		},
		{
			name: "only page index",
			setupCtx: func() context.Context {
				return WithPageIndex(context.Background(), 5)
			},
			wantKeys:  []string{"page_index"},
			wantEmpty: []string{"fetch_generation"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"fetch_generation", "page_index"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}
