package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/artview/internal/core/styles"
)

// View renders the browser, or the active modal centered on screen.
func (m Model) View() string {
	switch m.state {
	case stateBulkSelect:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.bulk.View())
	case stateDetail:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detail.View())
	}

	sections := []string{
		styles.CommandHeaderStyle.Render("artview"),
		m.renderBody(),
	}
	if toasts := m.toastView.Place(m.width); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections,
		m.renderStatusBar(),
		styles.HelpStyle.Render(m.help.View(m.keys)),
	)

	return strings.Join(sections, "\n")
}

func (m Model) renderBody() string {
	if !m.store.Loaded() {
		if m.store.Pending() {
			return m.spinner.View() + " " + styles.TextMutedStyle.Render("Loading artworks...")
		}
		return styles.TextMutedStyle.Render("Nothing loaded. Press r to retry.")
	}

	records := m.store.Records()
	if len(records) == 0 {
		return styles.TextMutedStyle.Render("No records on this page.")
	}

	return renderTable(records, m.tracker.IsSelected, m.cursor, m.width)
}

func (m Model) renderStatusBar() string {
	state := m.store.State()
	records := m.store.Records()

	page := styles.StatusAccentStyle.Render(fmt.Sprintf("PAGE %d/%d", state.PageIndex, state.TotalPages()))

	rows := "no rows"
	if len(records) > 0 {
		rows = fmt.Sprintf("rows %s-%s of %s",
			humanize.Comma(int64(state.First()+1)),
			humanize.Comma(int64(state.First()+len(records))),
			humanize.Comma(int64(state.TotalRecords)))
	}

	info := fmt.Sprintf("%s • %d per page • %d selected here • %d selected total",
		rows, state.PageSize, len(m.tracker.Selected()), m.tracker.SelectedCount())
	if m.store.Pending() {
		info += " • " + m.spinner.View() + " loading page " + fmt.Sprint(m.target.pageIndex)
	}

	bar := page + styles.StatusBarStyle.Render(info)
	gap := m.width - lipgloss.Width(bar)
	if gap > 0 {
		bar += styles.StatusBarStyle.Render(strings.Repeat(" ", max(gap-2, 0)))
	}
	return bar
}
