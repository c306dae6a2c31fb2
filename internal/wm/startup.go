package wm

import "github.com/goxwm/goxwm/internal/x11"

// Start brings up the window manager: claims SubstructureRedirect,
// discovers outputs, creates bar windows, grabs global input, scans
// for already-mapped windows, and starts the reaper. It returns an
// error for any startup-fatal condition (display
// already managed by another WM, grab failures).
func (e *Engine) Start() error {
	if err := x11.BecomeWindowManager(e.display); err != nil {
		return err
	}

	e.numlockMask = e.display.NumlockMask()
	e.updateOutputs()
	if e.selMonitor() == nil && len(e.monitors) > 0 {
		e.selmon = e.monitors[0].id
	}

	if err := e.display.GrabKeys(e.cfg.keyBindings()); err != nil {
		return err
	}

	e.display.SetSupportedAtoms([]string{
		"_NET_SUPPORTED", "_NET_WM_NAME", "_NET_WM_STATE", "_NET_WM_STATE_FULLSCREEN",
	})
	checkWin, err := e.display.CreateWindow(Rect{Width: 1, Height: 1}, true, 0)
	if err == nil {
		e.wmCheckWin = checkWin
		e.display.SetWMCheckWindow(checkWin)
	}

	e.startReaper()
	e.scan()
	e.drawBars()
	e.focus(nil)
	return nil
}

// Shutdown releases every managed client back to the unmanaged state
// (restoring border widths, per unmanage's non-destroyed path) and
// stops the reaper, mirroring dwm's cleanup() so a re-exec or crash
// recovery never leaves clients with a stale border.
func (e *Engine) Shutdown() {
	for _, m := range e.monitors {
		for _, id := range append([]ClientID{}, m.clients...) {
			if c := e.client(id); c != nil {
				e.unmanage(c, false)
			}
		}
	}
	e.stopReaper()
	e.display.Close()
}

// scan manages every already-mapped, non-override-redirect top-level
// window found on the root at startup, so goxwm can replace a crashed
// window manager or be restarted without windows disappearing from
// management. Mirrors dwm's scan().
func (e *Engine) scan() {
	wins, err := e.display.ExistingWindows()
	if err != nil {
		return
	}
	for _, w := range wins {
		overrideRedirect, mapped, err := e.display.WindowAttributes(w)
		if err != nil || overrideRedirect || !mapped {
			continue
		}
		e.manage(w)
	}
}

func (e *Engine) createMonitor(num int, r Rect) *Monitor {
	e.nextMonitor++
	m := &Monitor{
		id: e.nextMonitor, num: num,
		mx: r.X, my: r.Y, mw: r.Width, mh: r.Height,
		tagset:  [2]uint32{TagAll, TagAll},
		lt:      [2]*Layout{LayoutTile, LayoutFloat},
		mfact:   e.cfg.MFact,
		showBar: e.cfg.ShowBar,
		topBar:  e.cfg.TopBar,
	}
	if len(e.cfg.Layouts) > 0 {
		m.lt[0] = e.cfg.Layouts[0]
	}
	if len(e.cfg.Layouts) > 1 {
		m.lt[1] = e.cfg.Layouts[1]
	}
	e.updateBarPos(m)
	barWin, err := e.display.CreateWindow(e.barGeometry(m), true, x11.EventMaskButtonPress|x11.EventMaskExposure)
	if err == nil {
		m.barWin = barWin
		e.display.MapWindow(barWin)
	}
	return m
}

// barGeometry computes the bar window's on-screen rectangle for m:
// full monitor width, pinned to the top or bottom edge per m.topBar.
func (e *Engine) barGeometry(m *Monitor) Rect {
	barY := m.my
	if !m.topBar {
		barY = m.my + m.mh - e.display.BarHeight()
	}
	return Rect{X: m.mx, Y: barY, Width: m.mw, Height: e.display.BarHeight()}
}

// updateOutputs reconciles the monitor arena against the display's
// current RandR geometry: new outputs get a Monitor and bar, removed
// outputs have their clients folded onto monitor 0, and surviving
// outputs get their geometry refreshed.
func (e *Engine) updateOutputs() {
	outputs, err := e.display.OutputGeometries()
	if err != nil || len(outputs) == 0 {
		outputs = []Rect{{X: 0, Y: 0, Width: e.display.ScreenWidth(), Height: e.display.ScreenHeight()}}
	}

	for i, r := range outputs {
		if i < len(e.monitors) {
			m := e.monitors[i]
			m.mx, m.my, m.mw, m.mh = r.X, r.Y, r.Width, r.Height
			e.updateBarPos(m)
			if m.barWin != 0 {
				e.display.MoveResize(m.barWin, e.barGeometry(m))
			}
			continue
		}
		e.monitors = append(e.monitors, e.createMonitor(i, r))
	}

	for len(e.monitors) > len(outputs) {
		dead := e.monitors[len(e.monitors)-1]
		e.monitors = e.monitors[:len(e.monitors)-1]
		if len(e.monitors) == 0 {
			break
		}
		survivor := e.monitors[0]
		for _, id := range dead.clients {
			if c := e.client(id); c != nil {
				c.mon = survivor.id
				survivor.attach(id)
			}
		}
	}

	if e.selMonitor() == nil && len(e.monitors) > 0 {
		e.selmon = e.monitors[0].id
	}
	e.arrange(nil)
}
