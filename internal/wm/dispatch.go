package wm

import "github.com/goxwm/goxwm/internal/x11"

// nextEvent drains the queue of non-EnterNotify events that restack's
// EnterNotify drain re-queued before falling through to a blocking
// NextEvent, so nothing dropped during a drain is lost.
func (e *Engine) nextEvent() (x11.Event, error) {
	if len(e.pending) > 0 {
		ev := e.pending[0]
		e.pending = e.pending[1:]
		return ev, nil
	}
	return e.display.NextEvent()
}

// Run is the event-dispatch loop: block for an event,
// dispatch it to completion, flush, repeat. The only suspension point
// is nextEvent's call into NextEvent.
func (e *Engine) Run() error {
	e.running = true
	for e.running {
		ev, err := e.nextEvent()
		if err != nil {
			return err
		}
		e.dispatch(ev)
		e.display.Flush()
	}
	return nil
}

func (e *Engine) Quit() { e.running = false }

func (e *Engine) dispatch(ev x11.Event) {
	switch ev.Kind {
	case x11.EventButtonPress:
		e.handleButtonPress(ev)
	case x11.EventClientMessage:
		e.handleClientMessage(ev)
	case x11.EventConfigureRequest:
		e.handleConfigureRequest(ev)
	case x11.EventConfigureNotify:
		e.handleConfigureNotify(ev)
	case x11.EventDestroyNotify:
		if c := e.clientForWindow(ev.Window); c != nil {
			e.unmanage(c, true)
		}
	case x11.EventUnmapNotify:
		if c := e.clientForWindow(ev.Window); c != nil {
			e.unmanage(c, false)
		}
	case x11.EventEnterNotify:
		e.handleEnterNotify(ev)
	case x11.EventExpose:
		if ev.Count == 0 {
			for _, m := range e.monitors {
				if m.barWin == ev.Window {
					e.drawBar(m)
				}
			}
		}
	case x11.EventFocusIn:
		e.handleFocusIn(ev)
	case x11.EventKeyPress:
		e.handleKeyPress(ev)
	case x11.EventMappingNotify:
		e.display.RefreshKeyMap()
		if err := e.display.GrabKeys(e.cfg.keyBindings()); err != nil {
			e.log.WithError(err).Warn("regrab keys failed")
		}
	case x11.EventMapRequest:
		if overrideRedirect, _, err := e.display.WindowAttributes(ev.Window); err == nil && !overrideRedirect {
			if e.clientForWindow(ev.Window) == nil {
				e.manage(ev.Window)
			}
		}
	case x11.EventPropertyNotify:
		e.handlePropertyNotify(ev)
	case x11.EventRandrScreenChange:
		e.updateOutputs()
	case x11.EventError:
		e.log.WithError(ev.Err).Debug("x11 protocol error")
	}
}

func (e *Engine) handleButtonPress(ev x11.Event) {
	region, mask := e.resolveClickRegion(ev)

	c := e.clientForWindow(ev.Window)
	if c != nil && c.mon != e.selmon {
		e.focus(c)
		e.selmon = c.mon
	}

	cleanMod := e.cleanMask(ev.State)
	for _, b := range e.cfg.Buttons {
		if b.Region != region || b.Button != x11.Button(ev.Button) || e.cleanMask(b.Mod) != cleanMod {
			continue
		}
		arg := b.Arg
		if region == x11.ClickTagBar {
			arg.UInt = mask
		}
		b.Fn(e, arg)
	}

	if region == x11.ClickClientWin && c != nil {
		e.focus(c)
		e.restack(e.selMonitor())
	}
}

// resolveClickRegion maps a ButtonPress's window to a click region:
// bar windows resolve through classifyBarClick by x position, a
// managed client window is ClickClientWin, anything else (the root)
// is ClickRootWin.
func (e *Engine) resolveClickRegion(ev x11.Event) (x11.ClickRegion, uint32) {
	for _, m := range e.monitors {
		if m.barWin == ev.Window {
			return e.classifyBarClick(m, int(ev.RootX)-m.mx)
		}
	}
	if e.clientForWindow(ev.Window) != nil {
		return x11.ClickClientWin, 0
	}
	return x11.ClickRootWin, 0
}

// cleanMask strips the numlock and lock bits dwm always strips before
// comparing a grabbed modifier state to a binding's configured mod.
func (e *Engine) cleanMask(mod uint16) uint16 {
	return mod &^ (e.numlockMask | x11.LockMask) & (x11.ShiftMask | x11.ControlMask | x11.Mod1Mask | x11.Mod4Mask)
}

func (e *Engine) handleKeyPress(ev x11.Event) {
	cleanMod := e.cleanMask(ev.State)
	sym := e.display.KeysymForKeycode(ev.Keycode)
	for _, k := range e.cfg.Keys {
		if k.Sym != sym || e.cleanMask(k.Mod) != cleanMod {
			continue
		}
		k.Fn(e, k.Arg)
	}
}

func (e *Engine) handleClientMessage(ev x11.Event) {
	c := e.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	if ev.MessageType != e.display.NetWMStateAtom() {
		return
	}
	fsAtom := uint32(e.display.NetWMStateFullscreenAtom())
	if ev.Data32[1] != fsAtom && ev.Data32[2] != fsAtom {
		return
	}
	switch ev.Data32[0] {
	case 0:
		e.setFullscreen(c, false)
	case 1:
		e.setFullscreen(c, true)
	case 2:
		e.setFullscreen(c, !c.isFullscreen)
	}
}

func (e *Engine) handleConfigureRequest(ev x11.Event) {
	c := e.clientForWindow(ev.Window)
	if c == nil {
		e.display.PassThroughConfigure(ev.Window, Rect{X: int(ev.X), Y: int(ev.Y), Width: int(ev.Width), Height: int(ev.Height)}, uint32(ev.BorderWidth), ev.ValueMask, ev.Sibling, 0)
		return
	}

	m := e.monitor(c.mon)
	if c.isFloating || m.lt[m.sellt].Arrange == nil {
		r := c.geometry()
		if ev.ValueMask&x11.ConfigWindowX != 0 {
			r.X = int(ev.X)
		}
		if ev.ValueMask&x11.ConfigWindowY != 0 {
			r.Y = int(ev.Y)
		}
		if ev.ValueMask&x11.ConfigWindowWidth != 0 {
			r.Width = int(ev.Width)
		}
		if ev.ValueMask&x11.ConfigWindowHeight != 0 {
			r.Height = int(ev.Height)
		}
		if r.X+r.Width > m.mx+m.mw && c.isFloating {
			r.X = m.mx + (m.mw-r.Width)/2
		}
		if r.Y+r.Height > m.my+m.mh && c.isFloating {
			r.Y = m.my + (m.mh-r.Height)/2
		}
		c.x, c.y, c.w, c.h = r.X, r.Y, r.Width, r.Height
		e.display.ConfigureWindow(c.win, r, uint32(c.bw), false)
	}
	e.display.SendConfigureNotify(c.win, c.geometry(), uint32(c.bw))
}

func (e *Engine) handleConfigureNotify(ev x11.Event) {
	if ev.Window != e.display.Root() {
		return
	}
	e.updateOutputs()
}

func (e *Engine) handleEnterNotify(ev x11.Event) {
	if ev.Mode != x11.NotifyNormal && ev.Window != e.display.Root() {
		return
	}
	if ev.Detail == x11.NotifyInferior && ev.Window != e.display.Root() {
		return
	}
	c := e.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	if m := e.monitor(c.mon); m != nil && m.id != e.selmon {
		e.unfocus(e.client(e.selMonitor().sel), true)
		e.selmon = m.id
	}
	e.focus(c)
}

func (e *Engine) handleFocusIn(ev x11.Event) {
	sel := e.client(e.selMonitor().sel)
	if sel != nil && sel.win != ev.Window {
		e.display.SetInputFocus(sel.win)
	}
}

func (e *Engine) handlePropertyNotify(ev x11.Event) {
	atoms := e.display.PropertyAtoms()
	if ev.Window == e.display.Root() {
		if ev.Atom == atoms.WMName || ev.Atom == atoms.NetWMName {
			e.drawBar(e.selMonitor())
		}
		return
	}
	c := e.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	switch {
	case ev.Atom == atoms.WMTransientFor:
		if parent, ok := e.display.TransientFor(c.win); ok {
			if e.clientForWindow(parent) != nil && !c.isFloating {
				c.isFloating = true
				e.arrange(e.monitor(c.mon))
			}
		}
	case ev.Atom == atoms.WMNormalHints:
		e.updateSizeHints(c)
	case ev.Atom == atoms.WMHints:
		e.updateWMHints(c)
		e.drawBars()
	case ev.Atom == atoms.WMName || ev.Atom == atoms.NetWMName:
		e.updateTitle(c)
		e.drawBar(e.monitor(c.mon))
	}
}
