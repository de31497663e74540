package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/styles"
)

const (
	colCheck = iota
	colID
	colTitle
	colArtist
	colOrigin
	colInscriptions
	colStart
	colEnd
	numColumns
)

var columnHeaders = []string{"", "ID", "Title", "Artist", "Origin", "Inscriptions", "Start", "End"}

// columnWidths splits width across the columns. Fixed columns keep their
// size; the text columns share what is left.
func columnWidths(width int) [numColumns]int {
	var w [numColumns]int
	w[colCheck] = len(styles.IconChecked)
	w[colID] = 7
	w[colStart] = 5
	w[colEnd] = 5

	// one border and two padding cells per column, plus the right border
	chrome := numColumns*3 + 1
	flex := width - chrome - w[colCheck] - w[colID] - w[colStart] - w[colEnd]
	flex = max(flex, 40)

	w[colTitle] = flex * 30 / 100
	w[colArtist] = flex * 25 / 100
	w[colOrigin] = flex * 15 / 100
	w[colInscriptions] = flex - w[colTitle] - w[colArtist] - w[colOrigin]
	return w
}

func cellText(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return ansi.Truncate(s, width, "…")
}

// tableRow renders one artwork into padded, truncated cells.
func tableRow(art listing.Artwork, selected bool, widths [numColumns]int) []string {
	check := styles.IconUnchecked
	if selected {
		check = styles.IconChecked
	}

	row := make([]string, numColumns)
	row[colCheck] = check
	row[colID] = cellText(strconv.Itoa(art.ID), widths[colID])
	row[colTitle] = cellText(art.Title, widths[colTitle])
	row[colArtist] = cellText(art.ArtistDisplay, widths[colArtist])
	row[colOrigin] = cellText(art.PlaceOfOrigin, widths[colOrigin])
	row[colInscriptions] = cellText(art.Inscriptions, widths[colInscriptions])
	row[colStart] = cellText(formatYear(art.DateStart), widths[colStart])
	row[colEnd] = cellText(formatYear(art.DateEnd), widths[colEnd])
	return row
}

// renderTable renders the page as a bordered table. isSelected reports the
// selection of a row position; cursor is the highlighted row.
func renderTable(records []listing.Artwork, isSelected func(int) bool, cursor, width int) string {
	widths := columnWidths(width)

	rows := make([][]string, 0, len(records))
	for i, art := range records {
		rows = append(rows, tableRow(art, isSelected(i), widths))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers(columnHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				return styles.TableHeaderStyle
			case row == cursor:
				s = styles.TableCursorStyle
			case isSelected(row):
				s = styles.TableSelectedStyle
			default:
				s = styles.TableCellStyle
			}
			if col == colCheck && isSelected(row) {
				s = s.Foreground(styles.TableCheckStyle.GetForeground()).Bold(styles.TableCheckStyle.GetBold())
			}
			return s.Width(widths[col] + 2)
		})

	return t.Render()
}
