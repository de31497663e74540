package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/artview/internal/core/config"
	"github.com/colonyops/artview/internal/core/listing"
)

// fakeFetcher serves total artworks with IDs 1..total and fails for the
// page indexes in fail.
type fakeFetcher struct {
	total int
	fail  map[int]bool
	calls []int
}

func (f *fakeFetcher) FetchPage(_ context.Context, pageIndex, pageSize int) (listing.Page[listing.Artwork], error) {
	f.calls = append(f.calls, pageIndex)
	if f.fail[pageIndex] {
		return listing.Page[listing.Artwork]{}, &listing.FetchError{
			Kind:       listing.FailureStatus,
			PageIndex:  pageIndex,
			PageSize:   pageSize,
			StatusCode: 503,
		}
	}

	start := (pageIndex - 1) * pageSize
	end := min(start+pageSize, f.total)
	records := []listing.Artwork{}
	for id := start + 1; id <= end; id++ {
		records = append(records, listing.Artwork{ID: id, Title: fmt.Sprintf("Artwork %d", id)})
	}
	return listing.Page[listing.Artwork]{Records: records, Total: f.total}, nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Pagination.PageSize = 5
	cfg.Pagination.PageSizeOptions = []int{5, 10}
	return &cfg
}

// newTestModel builds a model and applies its initial fetch.
func newTestModel(t *testing.T, f *fakeFetcher) Model {
	t.Helper()
	m := New(Deps{Config: testConfig(), Fetcher: f}, Opts{})
	return runFetch(t, m, m.Init())
}

// send delivers msgs in order and returns the model and the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

// runFetch executes cmd and delivers any page fetch results it produces.
// Other messages, like spinner ticks, are dropped.
func runFetch(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if fetched, ok := c().(pageFetchedMsg); ok {
				m, _ = send(t, m, fetched)
			}
		}
	case pageFetchedMsg:
		m, _ = send(t, m, msg)
	}
	return m
}

func ids(records []listing.Artwork) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
