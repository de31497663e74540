// Package tui implements the artview terminal browser.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/artview/internal/core/browse"
	"github.com/colonyops/artview/internal/core/config"
	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/logging"
	"github.com/colonyops/artview/internal/core/styles"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateBulkSelect
	stateDetail
)

const (
	defaultWidth  = 120
	defaultHeight = 30
)

// Deps holds the collaborators the model needs.
type Deps struct {
	Config  *config.Config
	Fetcher browse.Fetcher[listing.Artwork]
}

// Opts holds startup options.
type Opts struct {
	StartPage int // 1-based; values below 1 start on the first page
}

// target is the page the user navigated to most recently. It runs ahead of
// the store while a fetch is in flight so repeated navigation keys compose.
type target struct {
	pageIndex int
	pageSize  int
}

// Model is the main bubbletea model.
type Model struct {
	state   UIState
	store   *browse.PageStore[listing.Artwork]
	tracker *browse.Tracker[listing.Artwork]
	target  target
	timeout time.Duration

	pageSizes []int
	cursor    int
	width     int
	height    int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	bulk   BulkSelectModal
	detail DetailModal

	toasts    *ToastController
	toastView *ToastView

	initCmd tea.Cmd
	log     zerolog.Logger
}

// New creates the model and issues the request for the first page. The
// request runs when the program calls Init.
func New(deps Deps, opts Opts) Model {
	cfg := deps.Config
	pageSize := cfg.Pagination.PageSize

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.TextPrimaryStyle

	toasts := NewToastController()

	m := Model{
		state:     stateNormal,
		store:     browse.NewPageStore(deps.Fetcher, pageSize),
		tracker:   browse.NewTracker[listing.Artwork](),
		timeout:   cfg.API.Timeout,
		pageSizes: cfg.PageSizes(),
		width:     defaultWidth,
		height:    defaultHeight,
		keys:      newKeyMap(),
		help:      help.New(),
		spinner:   sp,
		toasts:    toasts,
		toastView: NewToastView(toasts),
		log:       logging.Component("tui"),
	}

	startPage := max(opts.StartPage, 1)
	m.initCmd = m.onPageChange((startPage-1)*pageSize, pageSize)
	return m
}

// Init starts the first fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.spinner.Tick)
}

// pageFetchedMsg carries a completed fetch back to the event loop.
type pageFetchedMsg struct {
	result browse.Result[listing.Artwork]
}

// SelectionChangeMsg replaces the selection of the page that was loaded at
// Epoch. Edits against a page that has since been replaced are dropped.
type SelectionChangeMsg struct {
	Epoch   uint64
	Records []listing.Artwork
}

// fetchCmd runs req off the event loop. Run does not touch store state, so
// it is safe to call from the command goroutine.
func (m Model) fetchCmd(req browse.Request) tea.Cmd {
	store := m.store
	timeout := m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return pageFetchedMsg{result: store.Run(ctx, req)}
	}
}

// onPageChange handles a page control event carrying the zero-based offset
// of the first row and the page size.
func (m *Model) onPageChange(first, rows int) tea.Cmd {
	req, err := m.store.OnPageControlChange(first, rows)
	if err != nil {
		m.log.Warn().Err(err).Int("first", first).Int("rows", rows).Msg("ignoring page change")
		return nil
	}
	m.target = target{pageIndex: req.PageIndex, pageSize: req.PageSize}
	return m.fetchCmd(req)
}

// onSelectionChange applies a replacement selection for the current page.
func (m *Model) onSelectionChange(epoch uint64, records []listing.Artwork) {
	if _, err := m.tracker.ManualChange(epoch, records); err != nil {
		m.log.Debug().Err(err).Uint64("epoch", epoch).Msg("dropping selection change")
	}
}

// CurrentPageData returns the records of the page on screen.
func (m Model) CurrentPageData() []listing.Artwork {
	return m.store.Records()
}

// SelectedRecords returns the selected records of the page on screen.
func (m Model) SelectedRecords() []listing.Artwork {
	return m.tracker.Selected()
}

// TotalRecords returns the record count reported by the last applied fetch.
func (m Model) TotalRecords() int {
	return m.store.State().TotalRecords
}

// First returns the zero-based offset of the first row on screen.
func (m Model) First() int {
	return m.store.State().First()
}

// Rows returns the page size of the page on screen.
func (m Model) Rows() int {
	return m.store.State().PageSize
}

// Epoch returns the selection epoch of the page on screen.
func (m Model) Epoch() uint64 {
	return m.tracker.Epoch()
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.store.Pending()
}
