package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/artview/internal/core/browse"
	"github.com/colonyops/artview/internal/core/styles"
)

// BulkSelectModal asks for a row count and selects that many rows from the
// top of the current page. Invalid or non-positive counts are ignored and
// the modal stays open.
type BulkSelectModal struct {
	input     textinput.Model
	epoch     uint64
	pageLen   int
	maxRows   int
	positions browse.PositionSet
	count     int
	submitted bool
	cancelled bool
}

// NewBulkSelectModal creates the modal for the page loaded at epoch, holding
// pageLen records at a page size of maxRows, with positions already selected.
func NewBulkSelectModal(epoch uint64, pageLen, maxRows int, positions browse.PositionSet) BulkSelectModal {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(pageLen)
	ti.Prompt = "rows: "
	ti.CharLimit = 6
	ti.Width = 12
	ti.Focus()

	return BulkSelectModal{
		input:     ti,
		epoch:     epoch,
		pageLen:   pageLen,
		maxRows:   maxRows,
		positions: positions,
	}
}

// Update handles messages.
func (m BulkSelectModal) Update(msg tea.Msg) (BulkSelectModal, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			count, ok := parseBulkCount(m.input.Value())
			if !ok {
				return m, nil
			}
			m.count = count
			m.submitted = true
			return m, nil
		case "esc":
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Reopen clears a rejected submission so the user can try again.
func (m *BulkSelectModal) Reopen() {
	m.submitted = false
	m.count = 0
}

// parseBulkCount accepts positive integers only.
func parseBulkCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// View renders the modal.
func (m BulkSelectModal) View() string {
	summary := fmt.Sprintf("%d of %d rows on this page, %d selected", m.pageLen, m.maxRows, m.positions.Len())

	content := strings.Join([]string{
		styles.ModalTitleStyle.Render("Select first N rows"),
		styles.TextMutedStyle.Render(summary),
		"",
		m.input.View(),
		styles.ModalHelpStyle.Render("enter: select • esc: cancel"),
	}, "\n")

	return styles.ModalStyle.Render(content)
}

// Submitted returns true once a valid count was entered.
func (m BulkSelectModal) Submitted() bool {
	return m.submitted
}

// Cancelled returns true if the modal was dismissed.
func (m BulkSelectModal) Cancelled() bool {
	return m.cancelled
}

// Epoch returns the selection epoch of the page the modal was opened on.
func (m BulkSelectModal) Epoch() uint64 {
	return m.epoch
}

// Count returns the submitted row count.
func (m BulkSelectModal) Count() int {
	return m.count
}
