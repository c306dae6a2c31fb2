package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// Standard X cursor font glyph indices (X11/cursorfont.h), used
// directly because xgbutil/xcursor exposes them as untyped consts.
const (
	glyphLeftPtr  = xcursor.LeftPtr
	glyphFleur    = xcursor.Fleur
	glyphSizing   = xcursor.Sizing
)

func (c *conn) cursorFor(shape CursorShape) xproto.Cursor {
	glyph := glyphLeftPtr
	switch shape {
	case CursorMove:
		glyph = glyphFleur
	case CursorResize:
		glyph = glyphSizing
	}
	cur, err := xcursor.CreateCursor(c.xu, glyph)
	if err != nil {
		return 0
	}
	return cur
}
