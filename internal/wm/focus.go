package wm

import "github.com/goxwm/goxwm/internal/x11"

// focus selects c (nil meaning "pick the topmost visible client on the
// selected monitor, or none"). It unfocuses whatever
// was selected, moves c to the head of its monitor's stacking list,
// repaints both border colors, regrabs client buttons for the new
// focus state, and tells the display where input goes.
func (e *Engine) focus(c *Client) {
	m := e.selMonitor()
	if c == nil || !e.isVisible(c) {
		c = e.topVisible(m)
	}
	if sel := e.client(m.sel); sel != nil && sel != c {
		e.unfocus(sel, false)
	}

	if c != nil {
		if c.mon != e.selmon {
			e.selmon = c.mon
			m = e.selMonitor()
		}
		if c.isUrgent {
			e.display.ClearUrgent(c.win)
			c.isUrgent = false
		}
		m.detachStack(c.id)
		m.attachStack(c.id)
		m.sel = c.id
		e.display.SetBorderColor(c.win, x11.SchemeSel)
		e.grabButtonsFor(c, true)
		e.display.SetInputFocus(c.win)
	} else {
		m.sel = noClient
		e.display.SetInputFocusRoot()
	}
	e.drawBar(m)
}

func (e *Engine) unfocus(c *Client, setFocus bool) {
	if c == nil {
		return
	}
	e.grabButtonsFor(c, false)
	e.display.SetBorderColor(c.win, x11.SchemeNorm)
	if setFocus {
		e.display.SetInputFocusRoot()
	}
}

func (e *Engine) grabButtonsFor(c *Client, focused bool) {
	if err := e.display.GrabButtonsForClient(c.win, e.cfg.buttonBindings(), focused); err != nil {
		e.log.WithError(err).Warn("grab buttons failed")
	}
}

// topVisible returns the first client in m's stacking order that is
// currently visible, or nil.
func (e *Engine) topVisible(m *Monitor) *Client {
	if m == nil {
		return nil
	}
	for _, id := range m.stack {
		if c := e.client(id); c != nil && e.isVisible(c) {
			return c
		}
	}
	return nil
}

// restack raises the selected client if it floats or the layout is
// free-floating, then walks every other
// visible tiled client lowering each below the previous so the bar
// stays on top and ordering is deterministic. Finishes by draining
// EnterNotify, since the reordering generates spurious crossings.
func (e *Engine) restack(m *Monitor) {
	e.drawBar(m)
	sel := e.client(m.sel)
	if sel == nil {
		return
	}
	if sel.isFloating || m.lt[m.sellt].Arrange == nil {
		e.display.RaiseWindow(sel.win)
	}
	if m.lt[m.sellt].Arrange != nil {
		below := m.barWin
		for i := len(m.stack) - 1; i >= 0; i-- {
			c := e.client(m.stack[i])
			if c == nil || c.isFloating || !e.isVisible(c) {
				continue
			}
			e.display.LowerWindowBelow(c.win, below)
			below = c.win
		}
	}
	e.display.Flush()
	e.drainEnterNotify()
}

// drainEnterNotify discards queued EnterNotify events generated by the
// stacking changes above, per the "drain pending
// EnterNotify" rule: without this, window reshuffles cause the cursor
// to appear to "enter" windows it never physically crossed, stealing
// focus.
func (e *Engine) drainEnterNotify() {
	for {
		ev, ok := e.display.Poll()
		if !ok {
			return
		}
		if ev.Kind != x11.EventEnterNotify {
			e.pending = append(e.pending, ev)
		}
	}
}
