package wm

import "github.com/goxwm/goxwm/internal/x11"

// drawBar renders one monitor's bar. It computes the occupied and urgent
// tag bitmasks from the monitor's clients, then emits one DrawCmd
// batch covering tags, layout symbol, status text (selected monitor
// only), and the selected client's title.
func (e *Engine) drawBar(m *Monitor) {
	if !m.showBar {
		return
	}

	var occupied, urgent uint32
	for _, id := range m.clients {
		c := e.client(id)
		if c == nil {
			continue
		}
		occupied |= c.tags
		if c.isUrgent {
			urgent |= c.tags
		}
	}

	var cmds []x11.DrawCmd
	x := 0
	for i, label := range e.cfg.Tags {
		mask := uint32(1) << i
		w := e.display.TextWidth(label) + e.display.BarHeight()/2
		scheme := x11.SchemeNorm
		if mask&urgent != 0 {
			scheme = x11.SchemeUrgent
		} else if mask&m.curTags() != 0 {
			scheme = x11.SchemeSel
		}
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawClearRect, Rect: Rect{X: x, Y: 0, Width: w, Height: e.display.BarHeight()}, Scheme: scheme})
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawText, Rect: Rect{X: x, Y: 0, Width: w, Height: e.display.BarHeight()}, Text: label, Scheme: scheme})

		if mask&occupied != 0 {
			sel := e.client(m.sel)
			filled := sel != nil && sel.tags&mask != 0
			cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawSquare, Rect: Rect{X: x, Y: 0, Width: w, Height: e.display.BarHeight()}, Scheme: scheme, Filled: filled})
		}
		x += w
	}

	ltw := e.display.TextWidth(m.ltsymbol) + e.display.BarHeight()/2
	cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawClearRect, Rect: Rect{X: x, Y: 0, Width: ltw, Height: e.display.BarHeight()}, Scheme: x11.SchemeNorm})
	cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawText, Rect: Rect{X: x, Y: 0, Width: ltw, Height: e.display.BarHeight()}, Text: m.ltsymbol, Scheme: x11.SchemeNorm})
	x += ltw

	statusW := 0
	if m.id == e.selmon {
		status := e.display.StatusText()
		if status == "" {
			status = e.defaultTitle
		}
		statusW = e.display.TextWidth(status) + e.display.BarHeight()/2
		sx := m.ww - statusW
		if sx < x {
			sx = x
		}
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawClearRect, Rect: Rect{X: sx, Y: 0, Width: m.ww - sx, Height: e.display.BarHeight()}, Scheme: x11.SchemeNorm})
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawText, Rect: Rect{X: sx, Y: 0, Width: m.ww - sx, Height: e.display.BarHeight()}, Text: status, Scheme: x11.SchemeNorm})
	}

	midRight := m.ww - statusW
	if midRight < x {
		midRight = x
	}
	midW := midRight - x
	if sel := e.client(m.sel); sel != nil && midW > 0 {
		scheme := x11.SchemeNorm
		if m.id == e.selmon {
			scheme = x11.SchemeSel
		}
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawClearRect, Rect: Rect{X: x, Y: 0, Width: midW, Height: e.display.BarHeight()}, Scheme: scheme})
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawText, Rect: Rect{X: x, Y: 0, Width: midW, Height: e.display.BarHeight()}, Text: sel.name, Scheme: scheme})
		if sel.isFixed || sel.isFloating {
			cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawSquare, Rect: Rect{X: x, Y: 0, Width: midW, Height: e.display.BarHeight()}, Scheme: scheme, Filled: sel.isFixed})
		}
	} else if midW > 0 {
		cmds = append(cmds, x11.DrawCmd{Kind: x11.DrawClearRect, Rect: Rect{X: x, Y: 0, Width: midW, Height: e.display.BarHeight()}, Scheme: x11.SchemeNorm})
	}

	e.display.DrawBar(m.barWin, Rect{X: 0, Y: 0, Width: m.ww, Height: e.display.BarHeight()}, cmds)
}

func (e *Engine) drawBars() {
	for _, m := range e.monitors {
		e.drawBar(m)
	}
}

// updateBarPos recomputes a monitor's work area to exclude the bar:
// the work area spans the full monitor width, and a shown bar takes its
// height off wh — off the top (wy moves down by the bar height) when
// topBar is set, else off the bottom edge.
func (e *Engine) updateBarPos(m *Monitor) {
	m.wx = m.mx
	m.ww = m.mw
	m.wy = m.my
	m.wh = m.mh
	if !m.showBar {
		return
	}
	bh := e.display.BarHeight()
	m.wh -= bh
	if m.topBar {
		m.wy += bh
	}
}

// classifyBarClick reproduces drawBar's left-to-right layout to turn a
// ButtonPress's x coordinate into a click region and, for TagBar
// clicks, the tag mask under the cursor.
func (e *Engine) classifyBarClick(m *Monitor, x int) (x11.ClickRegion, uint32) {
	cur := 0
	for i, label := range e.cfg.Tags {
		w := e.display.TextWidth(label) + e.display.BarHeight()/2
		if x < cur+w {
			return x11.ClickTagBar, uint32(1) << i
		}
		cur += w
	}

	ltw := e.display.TextWidth(m.ltsymbol) + e.display.BarHeight()/2
	if x < cur+ltw {
		return x11.ClickLtSymbol, 0
	}
	cur += ltw

	if m.id == e.selmon {
		status := e.display.StatusText()
		if status == "" {
			status = e.defaultTitle
		}
		statusW := e.display.TextWidth(status) + e.display.BarHeight()/2
		if x > m.ww-statusW {
			return x11.ClickStatusText, 0
		}
	}

	return x11.ClickWinTitle, 0
}

func (e *Engine) toggleBar(m *Monitor) {
	m.showBar = !m.showBar
	e.updateBarPos(m)
	if m.barWin != 0 {
		e.display.MoveResize(m.barWin, e.barGeometry(m))
	}
	e.arrange(m)
}
