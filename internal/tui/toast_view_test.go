package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/artview/internal/core/notify"
	"github.com/colonyops/artview/internal/core/styles"
	"github.com/colonyops/artview/pkg/tuitest"
)

func TestToastView_Empty(t *testing.T) {
	v := NewToastView(NewToastController())
	assert.Empty(t, v.View())
	assert.Empty(t, v.Place(80))
}

func TestToastView_RendersLevels(t *testing.T) {
	c := NewToastController()
	c.Push(notify.New(notify.LevelInfo, "loaded"))
	c.Push(notify.New(notify.LevelError, "failed"))

	out := tuitest.StripANSI(NewToastView(c).View())

	assert.Contains(t, out, styles.IconNotifyInfo+" loaded")
	assert.Contains(t, out, styles.IconNotifyError+" failed")
	assert.Less(t, strings.Index(out, "loaded"), strings.Index(out, "failed"), "oldest toast renders first")
}

func TestToastView_PlaceRightAligns(t *testing.T) {
	c := NewToastController()
	c.Push(notify.New(notify.LevelWarning, "slow"))

	lines := strings.Split(tuitest.StripANSI(NewToastView(c).Place(120)), "\n")
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(" ", 60)))
}
