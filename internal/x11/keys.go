package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// queryNumlockMask finds which modifier bit the server has bound to
// the Num_Lock keysym, so grabs can be repeated with and without it
// held. Grounded on xgbutil/keybind's modifier-map helpers.
func queryNumlockMask(xu *xgbutil.XUtil) uint16 {
	modmap, err := xproto.GetModifierMapping(xu.Conn()).Reply()
	if err != nil || modmap == nil {
		return 0
	}
	const xkNumLock xproto.Keysym = 0xff7f
	keysPerMod := int(modmap.KeycodesPerModifier)
	for mod := 0; mod < 8; mod++ {
		for i := 0; i < keysPerMod; i++ {
			kc := modmap.Keycodes[mod*keysPerMod+i]
			if kc == 0 {
				continue
			}
			if keybind.KeysymGet(xu, kc, 0) == xkNumLock {
				return 1 << uint(mod)
			}
		}
	}
	return 0
}

func (c *conn) NumlockMask() uint16 { return c.numlockMask }

func (c *conn) RefreshKeyMap() {
	keybind.Initialize(c.xu)
	c.numlockMask = queryNumlockMask(c.xu)
}

// lockMask is the Caps Lock modifier bit, always bit 1 in X11.
const lockMask = xproto.ModMaskLock

// GrabKeys grabs every binding on the root window with all four
// combinations of {0, Lock} x {0, Numlock}.
// Existing grabs on the root are released first so re-grabbing after
// a MappingNotify never double-grabs.
func (c *conn) GrabKeys(keys []KeyBinding) error {
	xproto.UngrabKey(c.xu.Conn(), xproto.GrabAny, c.root, xproto.ModMaskAny)

	extra := []uint16{0, lockMask, c.numlockMask, lockMask | c.numlockMask}
	for _, kb := range keys {
		code := keybind.KeysymToKeycode(c.xu, kb.Sym)
		if code == 0 {
			continue
		}
		for _, mod := range extra {
			xproto.GrabKey(c.xu.Conn(), false, c.root, kb.Mod|mod, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
	return nil
}

// GrabButtonsForClient grabs buttons on w. Unfocused clients get every
// button grabbed with a synchronous pointer, so any click reaches the
// engine first (which focuses the client) and is then replayed to the
// client: decode releases the frozen pointer with
// AllowEvents(ReplayPointer) for every ButtonPress. Focused clients get
// only the compiled-in ClickClientWin buttons, grabbed with an
// asynchronous pointer, so those clicks go to the engine alone.
func (c *conn) GrabButtonsForClient(w Window, buttons []ButtonBinding, focused bool) error {
	c.UngrabButtons(w)
	extra := []uint16{0, lockMask, c.numlockMask, lockMask | c.numlockMask}
	if !focused {
		xproto.GrabButton(c.xu.Conn(), false, w,
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeSync, xproto.GrabModeSync, 0, 0,
			xproto.ButtonIndexAny, xproto.ButtonMaskAny)
		return nil
	}
	for _, bb := range buttons {
		if bb.Region != ClickClientWin {
			continue
		}
		for _, mod := range extra {
			xproto.GrabButton(c.xu.Conn(), false, w,
				xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
				xproto.GrabModeAsync, xproto.GrabModeSync, 0, 0,
				bb.Button, bb.Mod|mod)
		}
	}
	return nil
}

func (c *conn) UngrabButtons(w Window) {
	xproto.UngrabButton(c.xu.Conn(), xproto.ButtonIndexAny, w, xproto.ModMaskAny)
}

func (c *conn) GrabPointer(cursor CursorShape) bool {
	cur := c.cursorFor(cursor)
	reply, err := xproto.GrabPointer(c.xu.Conn(), false, c.root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cur, xproto.TimeCurrentTime).Reply()
	if err != nil || reply == nil {
		return false
	}
	return reply.Status == xproto.GrabStatusSuccess
}

func (c *conn) UngrabPointer() {
	xproto.UngrabPointer(c.xu.Conn(), xproto.TimeCurrentTime)
}

func (c *conn) GrabServer() {
	xproto.GrabServer(c.xu.Conn())
}

func (c *conn) UngrabServer() {
	xproto.UngrabServer(c.xu.Conn())
}

func (c *conn) SetInputFocus(w Window) {
	xproto.SetInputFocus(c.xu.Conn(), xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime)
}

func (c *conn) SetInputFocusRoot() {
	xproto.SetInputFocus(c.xu.Conn(), xproto.InputFocusPointerRoot, c.root, xproto.TimeCurrentTime)
}

func (c *conn) QueryPointer() (rootX, rootY int16, child Window, err error) {
	reply, err := xproto.QueryPointer(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return 0, 0, 0, err
	}
	return reply.RootX, reply.RootY, reply.Child, nil
}

func (c *conn) WarpPointer(w Window, x, y int16) {
	xproto.WarpPointer(c.xu.Conn(), 0, w, 0, 0, 0, 0, x, y)
}
