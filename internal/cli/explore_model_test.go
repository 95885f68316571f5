package cli

import (
	"regexp"
	"testing"

	"github.com/nadialowe/chartwell/internal/teatest"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plainView(d *teatest.Driver) string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}

func TestExploreModel_InitialView(t *testing.T) {
	d := teatest.New(t, newExploreModel())

	view := plainView(d)
	assert.Contains(t, view, "INTERVAL EXPLORER")
	assert.Contains(t, view, "24h")
	assert.Contains(t, view, "5m")
	assert.Contains(t, view, "line")
}

func TestExploreModel_WidenRangeTriggersUpgradeDisplay(t *testing.T) {
	d := teatest.New(t, newExploreModel())

	// Cycle configured interval to 1d ("5m" is index 2, "1d" index 7).
	for i := 0; i < 5; i++ {
		d.PressKey('i')
	}
	// Widen from 24h to 90d.
	for i := 0; i < 6; i++ {
		d.PressRight()
	}

	view := plainView(d)
	assert.Contains(t, view, "90d")
	assert.Contains(t, view, "upgraded from 1d")
}

func TestExploreModel_RangeBoundsClamped(t *testing.T) {
	d := teatest.New(t, newExploreModel())

	for i := 0; i < 20; i++ {
		d.PressLeft()
	}
	assert.Contains(t, plainView(d), "30m")

	for i := 0; i < 20; i++ {
		d.PressRight()
	}
	assert.Contains(t, plainView(d), "90d")
}

func TestExploreModel_KindCycleShowsBarPolicy(t *testing.T) {
	d := teatest.New(t, newExploreModel())

	// line → area → bar
	d.PressKey('k')
	d.PressKey('k')

	view := plainView(d)
	assert.Contains(t, view, "bar")
	assert.Contains(t, view, "forced by bar charts")
}

func TestExploreModel_QuitClearsView(t *testing.T) {
	d := teatest.New(t, newExploreModel())

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
