package wm

import (
	"testing"

	"github.com/goxwm/goxwm/internal/x11"
	"github.com/stretchr/testify/assert"
)

func TestApplySizeHintsIncrements(t *testing.T) {
	hints := x11.SizeHints{
		BaseWidth: 10, BaseHeight: 10,
		WidthInc: 8, HeightInc: 16,
		MinWidth: 10, MinHeight: 10,
	}
	r := Rect{X: 0, Y: 0, Width: 103, Height: 121}
	got := applySizeHints(r, hints, false, true)

	assert.Equal(t, 10+(103-10)/8*8, got.Width)
	assert.Equal(t, 10+(121-10)/16*16, got.Height)
}

func TestApplySizeHintsSkippedWhenNotFloatingAndResizeHintsOff(t *testing.T) {
	hints := x11.SizeHints{WidthInc: 8, HeightInc: 8, BaseWidth: 0, BaseHeight: 0}
	r := Rect{Width: 101, Height: 101}
	got := applySizeHints(r, hints, false, false)
	assert.Equal(t, r, got, "increments must not apply to a tiled client when resizeHints is off")
}

func TestApplySizeHintsMinMaxClamp(t *testing.T) {
	hints := x11.SizeHints{MinWidth: 50, MinHeight: 50, MaxWidth: 200, MaxHeight: 200, HasMax: true}
	small := applySizeHints(Rect{Width: 10, Height: 10}, hints, true, true)
	assert.Equal(t, 50, small.Width)
	assert.Equal(t, 50, small.Height)

	big := applySizeHints(Rect{Width: 999, Height: 999}, hints, true, true)
	assert.Equal(t, 200, big.Width)
	assert.Equal(t, 200, big.Height)
}

func TestClampToScreenSnapsNearEdge(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	r := Rect{X: -500, Y: -500, Width: 200, Height: 200}
	got := clampToScreen(r, 1, bounds)
	assert.Equal(t, 0, got.X)
	assert.Equal(t, 0, got.Y)
}

func TestClampToScreenPullsBackFromFarEdge(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	r := Rect{X: 3000, Y: 0, Width: 200, Height: 200}
	got := clampToScreen(r, 1, bounds)
	assert.Equal(t, bounds.Width-r.Width-2, got.X)
}
