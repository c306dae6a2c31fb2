package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

// atomSet caches the subset of ICCCM/EWMH atoms the engine consumes,
// interned once at connect time. Grounded on xgbutil/xprop.Atm, which
// does the same caching internally; we keep our own copy so every
// call site in this package is a struct field read instead of a
// round trip through xprop's cache.
type atomSet struct {
	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
	wmTakeFocus    xproto.Atom
	wmState        xproto.Atom
	wmName         xproto.Atom
	wmClass        xproto.Atom
	wmHints        xproto.Atom
	wmNormalHints  xproto.Atom
	wmTransientFor xproto.Atom

	netSupported     xproto.Atom
	netWMName        xproto.Atom
	netWMState       xproto.Atom
	netWMStateFullscreen xproto.Atom
	netSupportingWMCheck xproto.Atom
	netWMCheck       xproto.Atom
	netClientList    xproto.Atom
	utf8String       xproto.Atom
}

func internAtoms(c *conn) (atomSet, error) {
	names := []string{
		"WM_PROTOCOLS",
		"WM_DELETE_WINDOW",
		"WM_TAKE_FOCUS",
		"WM_STATE",
		"WM_NAME",
		"WM_CLASS",
		"WM_HINTS",
		"WM_NORMAL_HINTS",
		"WM_TRANSIENT_FOR",
		"_NET_SUPPORTED",
		"_NET_WM_NAME",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_SUPPORTING_WM_CHECK",
		"_NET_WM_CHECK",
		"_NET_CLIENT_LIST",
		"UTF8_STRING",
	}
	var a atomSet
	dst := []*xproto.Atom{
		&a.wmProtocols, &a.wmDeleteWindow, &a.wmTakeFocus, &a.wmState,
		&a.wmName, &a.wmClass, &a.wmHints, &a.wmNormalHints, &a.wmTransientFor,
		&a.netSupported, &a.netWMName, &a.netWMState, &a.netWMStateFullscreen,
		&a.netSupportingWMCheck, &a.netWMCheck, &a.netClientList, &a.utf8String,
	}
	for i, n := range names {
		atom, err := xprop.Atm(c.xu, n)
		if err != nil {
			return a, err
		}
		*dst[i] = atom
	}
	return a, nil
}
