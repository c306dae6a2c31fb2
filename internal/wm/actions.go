package wm

// Action functions implement the full action set. Each
// takes the Engine and the Arg selected by its binding; only the
// fields documented for that action are meaningful, per the Arg
// tagged-union convention in tags.go.

func actionSpawn(e *Engine, arg Arg) {
	e.spawn(arg.Str)
}

func actionView(e *Engine, arg Arg) {
	m := e.selMonitor()
	mask := arg.UInt
	if mask == 0 {
		mask = TagAll
	}
	m.view(mask)
	e.focus(nil)
	e.arrange(m)
}

func actionToggleView(e *Engine, arg Arg) {
	m := e.selMonitor()
	m.toggleview(arg.UInt)
	e.focus(nil)
	e.arrange(m)
}

func actionTag(e *Engine, arg Arg) {
	c := e.client(e.selMonitor().sel)
	if c == nil || arg.UInt == 0 {
		return
	}
	c.tags = arg.UInt & TagAll
	e.focus(nil)
	e.arrange(e.monitor(c.mon))
}

func actionToggleTag(e *Engine, arg Arg) {
	c := e.client(e.selMonitor().sel)
	if c == nil {
		return
	}
	newTags := c.tags ^ (arg.UInt & TagAll)
	if newTags == 0 {
		return
	}
	c.tags = newTags
	e.focus(nil)
	e.arrange(e.monitor(c.mon))
}

func actionToggleBar(e *Engine, _ Arg) {
	e.toggleBar(e.selMonitor())
}

func actionToggleFloating(e *Engine, _ Arg) {
	c := e.client(e.selMonitor().sel)
	if c == nil || c.isFullscreen {
		return
	}
	c.isFloating = !c.isFloating
	if c.isFloating {
		e.resizeClient(c, c.geometry(), false)
	}
	e.arrange(e.monitor(c.mon))
}

// focusstack cycles the selected client by dir (+1/-1) through the
// monitor's visible clients in attach order.
func actionFocusStack(e *Engine, arg Arg) {
	m := e.selMonitor()
	visible := e.visibleClients(m)
	if len(visible) == 0 {
		return
	}
	idx := 0
	for i, c := range visible {
		if c.id == m.sel {
			idx = i
			break
		}
	}
	next := ((idx+arg.Int)%len(visible) + len(visible)) % len(visible)
	e.focus(visible[next])
	e.restack(m)
}

func actionFocusMon(e *Engine, arg Arg) {
	if len(e.monitors) < 2 {
		return
	}
	idx := e.monitorIndex(e.selmon)
	next := (idx + arg.Int + len(e.monitors)) % len(e.monitors)
	e.unfocus(e.client(e.selMonitor().sel), true)
	e.selmon = e.monitors[next].id
	e.focus(nil)
}

func actionTagMon(e *Engine, arg Arg) {
	c := e.client(e.selMonitor().sel)
	if c == nil || len(e.monitors) < 2 {
		return
	}
	idx := e.monitorIndex(c.mon)
	next := e.monitors[(idx+arg.Int+len(e.monitors))%len(e.monitors)]
	m := e.monitor(c.mon)
	m.detach(c.id)
	m.detachStack(c.id)
	c.mon = next.id
	c.tags = next.curTags()
	next.attach(c.id)
	e.focus(nil)
	e.arrange(nil)
}

func (e *Engine) monitorIndex(id MonitorID) int {
	for i, m := range e.monitors {
		if m.id == id {
			return i
		}
	}
	return 0
}

// setlayout(nil) toggles between the two layout slots; setlayout(L)
// sets the current slot to L, toggling if L is already current,
//.
func actionSetLayout(e *Engine, arg Arg) {
	m := e.selMonitor()
	if arg.Layout == nil {
		m.sellt ^= 1
	} else if arg.Layout == m.lt[m.sellt] {
		m.sellt ^= 1
	} else {
		m.lt[m.sellt] = arg.Layout
	}
	m.ltsymbol = m.lt[m.sellt].Symbol
	e.arrange(m)
}

// setmfact(f): |f| < 1 is a delta, else f-1 is absolute; clamp to
// [0.1, 0.9].
func actionSetMFact(e *Engine, arg Arg) {
	m := e.selMonitor()
	f := arg.Float
	if f < 1.0 && f > -1.0 {
		f += m.mfact
	} else {
		f -= 1.0
	}
	if f < 0.1 {
		f = 0.1
	} else if f > 0.9 {
		f = 0.9
	}
	m.mfact = f
	e.arrange(m)
}

// zoom swaps the selected client to the head of the attach-order list,
// making it the new master. No-op under monocle, free-floating, or
// when the selection itself floats.
func actionZoom(e *Engine, _ Arg) {
	m := e.selMonitor()
	c := e.client(m.sel)
	if c == nil || c.isFloating {
		return
	}
	if m.lt[m.sellt].Arrange == nil || m.lt[m.sellt] == LayoutMonocle {
		return
	}
	if len(m.clients) > 0 && m.clients[0] == c.id {
		c = e.nextVisibleTiled(m, c)
		if c == nil {
			return
		}
	}
	m.detach(c.id)
	m.clients = append([]ClientID{c.id}, m.clients...)
	e.focus(c)
	e.arrange(m)
}

func (e *Engine) nextVisibleTiled(m *Monitor, after *Client) *Client {
	found := false
	for _, id := range m.clients {
		c := e.client(id)
		if c == nil {
			continue
		}
		if found && e.isVisible(c) && !c.isFloating {
			return c
		}
		if id == after.id {
			found = true
		}
	}
	return nil
}

// killclient sends a polite WM_DELETE_WINDOW when the client
// advertises it; otherwise grabs the server and destroys it outright,
//.
func actionKillClient(e *Engine, _ Arg) {
	c := e.client(e.selMonitor().sel)
	if c == nil {
		return
	}
	if e.display.SupportsDeleteWindow(c.win) {
		e.display.SendDeleteWindow(c.win, 0)
		return
	}
	e.display.GrabServer()
	e.display.DestroyWindow(c.win)
	e.display.Flush()
	e.display.UngrabServer()
}

func actionQuit(e *Engine, _ Arg) {
	e.Quit()
}

func actionMoveMouse(e *Engine, _ Arg) {
	c := e.client(e.selMonitor().sel)
	if c != nil {
		e.moveMouse(c)
	}
}

func actionResizeMouse(e *Engine, _ Arg) {
	c := e.client(e.selMonitor().sel)
	if c != nil {
		e.resizeMouse(c)
	}
}
