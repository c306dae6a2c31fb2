package x11

import (
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

const maxTitleBytes = 255

// WindowTitle implements the title-refresh rule: prefer
// _NET_WM_NAME, fall back to WM_NAME, fall back to "broken" on decode
// failure, and bound the result to 255 bytes.
func (c *conn) WindowTitle(w Window) string {
	if name, err := ewmh.WmNameGet(c.xu, w); err == nil && name != "" {
		return truncateUTF8(name, maxTitleBytes)
	}
	if name, err := icccm.WmNameGet(c.xu, w); err == nil && name != "" {
		return truncateUTF8(name, maxTitleBytes)
	}
	return "broken"
}

func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	b := []byte(s)[:max]
	for len(b) > 0 && !utf8.Valid(b) {
		b = b[:len(b)-1]
	}
	return string(b)
}

func (c *conn) WindowClassInstance(w Window) (class, instance string) {
	wc, err := icccm.WmClassGet(c.xu, w)
	if err != nil || wc == nil {
		return "", ""
	}
	return wc.Class, wc.Instance
}

func (c *conn) IsUrgent(w Window) bool {
	hints, err := icccm.WmHintsGet(c.xu, w)
	if err != nil || hints == nil {
		return false
	}
	return hints.Flags&icccm.HintUrgency != 0
}

func (c *conn) ClearUrgent(w Window) {
	hints, err := icccm.WmHintsGet(c.xu, w)
	if err != nil || hints == nil {
		return
	}
	hints.Flags &^= icccm.HintUrgency
	icccm.WmHintsSet(c.xu, w, hints)
}

// SizeHints decodes WM_NORMAL_HINTS. Missing or absent fields come
// back zero, which the engine's apply_size_hints treats as
// unconstrained, per the property-decode-failure rule.
func (c *conn) SizeHints(w Window) SizeHints {
	var out SizeHints
	h, err := icccm.WmNormalHintsGet(c.xu, w)
	if err != nil || h == nil {
		return out
	}
	if h.Flags&icccm.SizeHintPBaseSize != 0 {
		out.BaseWidth, out.BaseHeight = h.BaseWidth, h.BaseHeight
	} else if h.Flags&icccm.SizeHintPMinSize != 0 {
		out.BaseWidth, out.BaseHeight = h.MinWidth, h.MinHeight
	}
	if h.Flags&icccm.SizeHintPResizeInc != 0 {
		out.WidthInc, out.HeightInc = h.WidthInc, h.HeightInc
	}
	if h.Flags&icccm.SizeHintPMinSize != 0 {
		out.MinWidth, out.MinHeight = h.MinWidth, h.MinHeight
	}
	if h.Flags&icccm.SizeHintPMaxSize != 0 {
		out.MaxWidth, out.MaxHeight = h.MaxWidth, h.MaxHeight
		out.HasMax = true
	}
	if h.Flags&icccm.SizeHintPAspect != 0 && h.MaxAspectDen != 0 && h.MinAspectDen != 0 {
		out.MinAspect = float64(h.MinAspectNum) / float64(h.MinAspectDen)
		out.MaxAspect = float64(h.MaxAspectNum) / float64(h.MaxAspectDen)
		out.HasMinAspect = true
		out.HasMaxAspect = true
	}
	return out
}

func (c *conn) TransientFor(w Window) (Window, bool) {
	parent, err := icccm.WmTransientForGet(c.xu, w)
	if err != nil || parent == 0 {
		return 0, false
	}
	return parent, true
}

func (c *conn) SupportsDeleteWindow(w Window) bool {
	protos, err := icccm.WmProtocolsGet(c.xu, w)
	if err != nil {
		return false
	}
	for _, p := range protos {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

func (c *conn) SendDeleteWindow(w Window, timestamp uint32) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.atoms.wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms.wmDeleteWindow), timestamp, 0, 0, 0,
		}),
	}
	xproto.SendEvent(c.xu.Conn(), false, w, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (c *conn) SetWMStateNormal(w Window) {
	icccm.WmStateSet(c.xu, w, &icccm.WmState{State: icccm.StateNormal})
}

func (c *conn) SetWMStateWithdrawn(w Window) {
	icccm.WmStateSet(c.xu, w, &icccm.WmState{State: icccm.StateWithdrawn})
}

// SendConfigureNotify issues a synthetic ConfigureNotify carrying the
// committed geometry, per ICCCM 4.1.5 — required whenever the WM
// moves/resizes a window without changing its border width in a way
// the client would otherwise not be told about.
func (c *conn) SendConfigureNotify(w Window, r Rect, borderWidth uint32) {
	c.SendConfigureNotifyRaw(w, r, borderWidth)
}

func (c *conn) SendConfigureNotifyRaw(w Window, r Rect, borderWidth uint32) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            w,
		Window:           w,
		AboveSibling:     0,
		X:                int16(r.X),
		Y:                int16(r.Y),
		Width:            uint16(r.Width),
		Height:           uint16(r.Height),
		BorderWidth:      uint16(borderWidth),
		OverrideRedirect: false,
	}
	xproto.SendEvent(c.xu.Conn(), false, w, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

func (c *conn) SetSupportedAtoms(names []string) {
	ewmh.SupportedSet(c.xu, names)
}

func (c *conn) SetWMCheckWindow(check Window) error {
	if err := ewmh.SupportingWmCheckSet(c.xu, c.root, check); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(c.xu, check, check); err != nil {
		return err
	}
	return ewmh.WmNameSet(c.xu, check, "goxwm")
}
