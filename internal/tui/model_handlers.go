package tui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/artview/internal/core/browse"
	"github.com/colonyops/artview/internal/core/notify"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pageFetchedMsg:
		return m.handlePageFetched(msg)

	case SelectionChangeMsg:
		m.onSelectionChange(msg.Epoch, msg.Records)
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handlePageFetched(msg pageFetchedMsg) (tea.Model, tea.Cmd) {
	err := m.store.Apply(msg.result)
	switch {
	case errors.Is(err, browse.ErrStaleResult):
		return m, nil
	case err != nil:
		// The page on screen is unchanged, so navigation restarts from it.
		state := m.store.State()
		m.target = target{pageIndex: state.PageIndex, pageSize: state.PageSize}
		req := msg.result.Request
		n := notify.New(notify.LevelError,
			fmt.Sprintf("Loading page %d failed, no page change occurred", req.PageIndex))
		return m, m.pushToast(n.Keyed(fmt.Sprintf("fetch:%d:%d", req.PageIndex, req.PageSize)))
	}

	state := m.store.State()
	m.tracker.Load(state.Slot(), m.store.Records())
	m.cursor = clampCursor(m.cursor, len(m.store.Records()))

	switch m.state {
	case stateDetail:
		// The record it shows may have left the screen.
		m.state = stateNormal
	case stateBulkSelect:
		// The count would land on rows the user has not seen yet.
		m.state = stateNormal
		return m, m.pushToast(notify.New(notify.LevelWarning, "Page changed, bulk select cancelled"))
	}
	return m, nil
}

func (m *Model) pushToast(n notify.Notification) tea.Cmd {
	m.toasts.Push(n)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateBulkSelect:
		return m.handleBulkKey(msg)
	case stateDetail:
		return m.handleDetailKey(msg)
	}

	records := m.store.Records()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.Dismiss()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(records))
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(records))
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.logSelectionErr(m.tracker.Toggle(m.cursor))
		return m, nil

	case key.Matches(msg, m.keys.SelectPage):
		m.logSelectionErr(m.tracker.SelectAll())
		return m, nil

	case key.Matches(msg, m.keys.ClearPage):
		m.logSelectionErr(m.tracker.Clear())
		return m, nil

	case key.Matches(msg, m.keys.Bulk):
		if !m.store.Loaded() {
			return m, nil
		}
		m.bulk = NewBulkSelectModal(m.tracker.Epoch(), len(records), m.store.State().PageSize, m.tracker.Positions())
		m.state = stateBulkSelect
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if len(records) == 0 {
			return m, nil
		}
		m.detail = NewDetailModal(records[m.cursor], m.width, m.height)
		m.state = stateDetail
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.target.pageIndex >= m.totalPages(m.target.pageSize) {
			return m, nil
		}
		return m, m.gotoPage(m.target.pageIndex+1, m.target.pageSize)

	case key.Matches(msg, m.keys.PrevPage):
		if m.target.pageIndex <= 1 {
			return m, nil
		}
		return m, m.gotoPage(m.target.pageIndex-1, m.target.pageSize)

	case key.Matches(msg, m.keys.FirstPage):
		return m, m.gotoPage(1, m.target.pageSize)

	case key.Matches(msg, m.keys.LastPage):
		return m, m.gotoPage(m.totalPages(m.target.pageSize), m.target.pageSize)

	case key.Matches(msg, m.keys.Smaller):
		return m, m.resize(-1)

	case key.Matches(msg, m.keys.Larger):
		return m, m.resize(1)

	case key.Matches(msg, m.keys.Reload):
		return m, m.gotoPage(m.target.pageIndex, m.target.pageSize)
	}

	return m, nil
}

func (m Model) logSelectionErr(_ browse.PositionSet, err error) {
	if err != nil {
		m.log.Debug().Err(err).Msg("selection edit ignored")
	}
}

func (m *Model) gotoPage(pageIndex, pageSize int) tea.Cmd {
	return m.onPageChange((pageIndex-1)*pageSize, pageSize)
}

// resize steps the page size through the configured options. The first
// row offset is kept and the page index is derived from it.
func (m *Model) resize(step int) tea.Cmd {
	i := slices.Index(m.pageSizes, m.target.pageSize)
	next := i + step
	if i < 0 || next < 0 || next >= len(m.pageSizes) {
		return nil
	}
	first := (m.target.pageIndex - 1) * m.target.pageSize
	return m.onPageChange(first, m.pageSizes[next])
}

func (m Model) totalPages(pageSize int) int {
	state := m.store.State()
	state.PageSize = pageSize
	return state.TotalPages()
}

func (m Model) handleBulkKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.bulk, cmd = m.bulk.Update(msg)

	switch {
	case m.bulk.Cancelled():
		m.state = stateNormal
		return m, nil
	case m.bulk.Submitted() && m.bulk.Epoch() != m.tracker.Epoch():
		m.state = stateNormal
		return m, nil
	case m.bulk.Submitted():
		if _, _, ok := m.tracker.BulkSelect(m.bulk.Count()); !ok {
			m.bulk.Reopen()
			return m, nil
		}
		m.state = stateNormal
		return m, nil
	}

	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.state = stateNormal
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}
