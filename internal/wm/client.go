package wm

import "github.com/goxwm/goxwm/internal/x11"

// Client is a managed top-level window. It never holds
// a pointer to its Monitor, only the id (internal/wm/ids.go); the
// engine's arenas are the single source of truth for cross-references.
type Client struct {
	id  ClientID
	win x11.Window
	mon MonitorID

	name  string
	class string

	x, y, w, h   int
	oldX, oldY   int
	oldW, oldH   int
	bw, oldBW    int

	hints x11.SizeHints

	tags uint32

	isFixed    bool
	isFloating bool
	isUrgent   bool
	oldState   bool // floating state saved across togglefullscreen-style toggles
	isFullscreen bool
}

// borderWidth returns the border width a layout pass should shrink a
// client's usable rect by: the stored bw, which manage sets from
// Config.BorderPx and setFullscreen sets to 0 while the client is
// fullscreen, restoring it on leaving.
func (c *Client) borderWidth() int { return c.bw }

// geometry returns the client's current outer rect (excluding border,
// matching the semantics x11.Rect carries everywhere else in this
// package: position and size of the content area).
func (c *Client) geometry() Rect {
	return Rect{X: c.x, Y: c.y, Width: c.w, Height: c.h}
}

func (c *Client) saveGeometry() {
	c.oldX, c.oldY, c.oldW, c.oldH = c.x, c.y, c.w, c.h
}

func (c *Client) restoreGeometry() Rect {
	return Rect{X: c.oldX, Y: c.oldY, Width: c.oldW, Height: c.oldH}
}
