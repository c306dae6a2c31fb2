package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

func (c *conn) CreateWindow(r Rect, overrideRedirect bool, eventMask uint32) (Window, error) {
	wid, err := xproto.NewWindowId(c.xu.Conn())
	if err != nil {
		return 0, err
	}
	var valueMask uint32 = xproto.CwBackPixel | xproto.CwEventMask
	values := []uint32{c.colors.normBG, eventMask}
	if overrideRedirect {
		valueMask |= xproto.CwOverrideRedirect
		values = append(values, boolToUint32(true))
	}
	err = xproto.CreateWindowChecked(c.xu.Conn(), c.xu.Screen().RootDepth, wid, c.root,
		int16(r.X), int16(r.Y), uint16(r.Width), uint16(r.Height), 0,
		xproto.WindowClassInputOutput, c.xu.Screen().RootVisual, valueMask, values).Check()
	if err != nil {
		return 0, fmt.Errorf("create window: %w", err)
	}
	return wid, nil
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (c *conn) DestroyWindow(w Window) {
	xproto.DestroyWindow(c.xu.Conn(), w)
}

func (c *conn) MapWindow(w Window) {
	xproto.MapWindow(c.xu.Conn(), w)
}

func (c *conn) UnmapWindow(w Window) {
	xproto.UnmapWindow(c.xu.Conn(), w)
}

// ConfigureWindow commits geometry and border width in one request,
// optionally also raising the window above all siblings. Matches
// dwm's resizeclient, which always folds the stacking change into
// the same ConfigureWindow call when one is needed.
func (c *conn) ConfigureWindow(w Window, r Rect, borderWidth uint32, raise bool) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth)
	values := []uint32{
		uint32(int32(r.X)), uint32(int32(r.Y)),
		uint32(r.Width), uint32(r.Height), borderWidth,
	}
	if raise {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, xproto.StackModeAbove)
	}
	return xproto.ConfigureWindowChecked(c.xu.Conn(), w, mask, values).Check()
}

func (c *conn) RaiseWindow(w Window) {
	xproto.ConfigureWindow(c.xu.Conn(), w, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (c *conn) LowerWindowBelow(w, sibling Window) {
	xproto.ConfigureWindow(c.xu.Conn(), w,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow})
}

func (c *conn) MoveResize(w Window, r Rect) {
	xproto.ConfigureWindow(c.xu.Conn(), w,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{
			uint32(int32(r.X)), uint32(int32(r.Y)),
			uint32(r.Width), uint32(r.Height),
		})
}

func (c *conn) SetBorderWidth(w Window, bw uint32) {
	xproto.ConfigureWindow(c.xu.Conn(), w, xproto.ConfigWindowBorderWidth, []uint32{bw})
}

func (c *conn) SelectInput(w Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.xu.Conn(), w, xproto.CwEventMask, []uint32{mask}).Check()
}

func (c *conn) WindowAttributes(w Window) (overrideRedirect bool, mapped bool, err error) {
	reply, err := xproto.GetWindowAttributes(c.xu.Conn(), w).Reply()
	if err != nil {
		return false, false, err
	}
	return reply.OverrideRedirect, reply.MapState == xproto.MapStateViewable, nil
}

// ExistingWindows lists the root's current top-level children, so
// Engine.scan can manage whatever is already mapped when goxwm starts
// (a restart, or a replacement of a crashed window manager).
func (c *conn) ExistingWindows() ([]Window, error) {
	tree, err := xproto.QueryTree(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

// InitialGeometry reads a newly-mapped window's current geometry from
// the server, used by manage() to seed a Client's fields before any
// layout has had a chance to resize it.
func (c *conn) InitialGeometry(w Window) (Rect, uint32, error) {
	reply, err := xproto.GetGeometry(c.xu.Conn(), xproto.Drawable(w)).Reply()
	if err != nil {
		return Rect{}, 0, err
	}
	return Rect{X: int(reply.X), Y: int(reply.Y), Width: int(reply.Width), Height: int(reply.Height)}, uint32(reply.BorderWidth), nil
}

func (c *conn) PassThroughConfigure(w Window, r Rect, borderWidth uint32, valueMask uint16, sibling Window, stackMode uint8) {
	var values []uint32
	if valueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(int32(r.X)))
	}
	if valueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(int32(r.Y)))
	}
	if valueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(r.Width))
	}
	if valueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(r.Height))
	}
	if valueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, borderWidth)
	}
	if valueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(sibling))
	}
	if valueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(stackMode))
	}
	xproto.ConfigureWindow(c.xu.Conn(), w, valueMask, values)
}
