package x11

import "github.com/BurntSushi/xgb/xproto"

// Keysym values for the compiled-in default bindings. Letter and digit
// keysyms equal their ASCII codepoint (X11 keysymdef.h's Latin-1
// block); the named ones below are the standard XK_* values for keys
// without an ASCII equivalent.
const (
	XKReturn xproto.Keysym = 0xff0d
	XKTab    xproto.Keysym = 0xff09
	XKSpace   xproto.Keysym = 0x0020
	XKPeriod  xproto.Keysym = 0x002e
	XKComma   xproto.Keysym = 0x002c

	XKB xproto.Keysym = 'b'
	XKC xproto.Keysym = 'c'
	XKF xproto.Keysym = 'f'
	XKH xproto.Keysym = 'h'
	XKJ xproto.Keysym = 'j'
	XKK xproto.Keysym = 'k'
	XKL xproto.Keysym = 'l'
	XKM xproto.Keysym = 'm'
	XKQ xproto.Keysym = 'q'
	XKT xproto.Keysym = 't'
)
