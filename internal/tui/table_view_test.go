package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/internal/core/styles"
	"github.com/colonyops/artview/pkg/tuitest"
)

func TestColumnWidths_FillWidth(t *testing.T) {
	w := columnWidths(140)
	total := numColumns*3 + 1
	for _, cw := range w {
		total += cw
	}
	assert.Equal(t, 140, total)
}

func TestColumnWidths_MinimumFlex(t *testing.T) {
	w := columnWidths(10)
	assert.Equal(t, 40, w[colTitle]+w[colArtist]+w[colOrigin]+w[colInscriptions])
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "a b", cellText("a\n  b", 10))
	assert.Equal(t, "abcd…", cellText("abcdefgh", 5))
}

func TestTableRow(t *testing.T) {
	art := listing.Artwork{ID: 42, Title: "Nighthawks", DateStart: intPtr(1942)}
	row := tableRow(art, true, columnWidths(120))

	assert.Equal(t, styles.IconChecked, row[colCheck])
	assert.Equal(t, "42", row[colID])
	assert.Equal(t, "Nighthawks", row[colTitle])
	assert.Equal(t, "1942", row[colStart])
	assert.Empty(t, row[colEnd])
}

func TestRenderTable(t *testing.T) {
	records := []listing.Artwork{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	}
	selected := func(i int) bool { return i == 1 }

	out := tuitest.StripANSI(renderTable(records, selected, 0, 120))

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, styles.IconChecked)
	assert.Contains(t, out, styles.IconUnchecked)
}
