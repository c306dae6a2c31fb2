package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// rootEventMask is the event set required on the root
// window. Requesting SubstructureRedirect is how the server tells us
// whether another window manager already owns the display: the
// ChangeWindowAttributes call below fails with an AccessError if so.
const rootEventMask = xproto.EventMaskSubstructureNotify |
	xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskButtonPress |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// BecomeWindowManager is the first request goxwm makes after
// connecting. It is not part of the Display interface because the
// engine only ever calls it once, at startup, and the failure mode
// (another WM already running) is a startup-fatal condition the
// caller needs to distinguish from all other adapter errors.
func BecomeWindowManager(d Display) error {
	c := d.(*conn)
	return xproto.ChangeWindowAttributesChecked(c.xu.Conn(), c.root,
		xproto.CwEventMask, []uint32{uint32(rootEventMask)}).Check()
}
