package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/styles"
)

// DetailModal shows every field of one artwork rendered as markdown in a
// scrollable viewport.
type DetailModal struct {
	viewport viewport.Model
	title    string
}

// NewDetailModal renders art into a modal sized to fit a width x height
// screen.
func NewDetailModal(art listing.Artwork, width, height int) DetailModal {
	modalWidth := max(width*3/4, 40)
	modalHeight := max(height*3/4, 10)

	// border and padding
	contentWidth := modalWidth - 6
	contentHeight := modalHeight - 6

	vp := viewport.New(contentWidth, contentHeight)
	vp.SetContent(renderMarkdown(artworkMarkdown(art), contentWidth))

	return DetailModal{viewport: vp, title: art.Title}
}

// Update forwards scroll keys to the viewport.
func (m DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the modal.
func (m DetailModal) View() string {
	scroll := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	content := strings.Join([]string{
		m.viewport.View(),
		styles.ModalHelpStyle.Render("↑/↓ scroll • esc: close  " + scroll),
	}, "\n")
	return styles.ModalStyle.Render(content)
}

func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func artworkMarkdown(art listing.Artwork) string {
	var b strings.Builder

	title := art.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- **ID:** %d\n", art.ID)
	fmt.Fprintf(&b, "- **Artist:** %s\n", orDash(strings.ReplaceAll(art.ArtistDisplay, "\n", ", ")))
	fmt.Fprintf(&b, "- **Place of origin:** %s\n", orDash(art.PlaceOfOrigin))
	fmt.Fprintf(&b, "- **Date:** %s\n", formatDateRange(art.DateStart, art.DateEnd))

	if art.Inscriptions != "" {
		fmt.Fprintf(&b, "\n## Inscriptions\n\n%s\n", art.Inscriptions)
	}

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func formatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

func formatDateRange(start, end *int) string {
	s, e := formatYear(start), formatYear(end)
	switch {
	case s == "" && e == "":
		return "-"
	case s == "" || s == e:
		return orDash(e)
	case e == "":
		return s
	default:
		return s + "–" + e
	}
}
