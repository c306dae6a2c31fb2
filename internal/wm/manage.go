package wm

import "github.com/goxwm/goxwm/internal/x11"

// manage wraps win in a new Client, decides its monitor and tags,
// seeds geometry from the server, applies fixed/border/hints
// bookkeeping, attaches it to the owning monitor, maps it, and
// focuses it.
func (e *Engine) manage(win x11.Window) {
	if e.clientForWindow(win) != nil {
		return
	}

	geom, bw, err := e.display.InitialGeometry(win)
	if err != nil {
		return
	}

	e.nextClient++
	c := &Client{
		id:  e.nextClient,
		win: win,
		mon: e.selmon,
		x:   geom.X, y: geom.Y, w: geom.Width, h: geom.Height,
		oldX: geom.X, oldY: geom.Y, oldW: geom.Width, oldH: geom.Height,
		bw: e.cfg.BorderPx, oldBW: int(bw),
	}
	c.name = e.display.WindowTitle(win)

	if parent, ok := e.display.TransientFor(win); ok {
		if pc := e.clientForWindow(parent); pc != nil {
			c.mon = pc.mon
			c.tags = pc.tags
		}
	} else {
		e.applyRules(c)
	}

	m := e.monitor(c.mon)
	if c.x+c.w > m.mx+m.mw {
		c.x = m.mx + m.mw - c.w
	}
	if c.y+c.h > m.my+m.mh {
		c.y = m.my + m.mh - c.h
	}
	if c.x < m.mx {
		c.x = m.mx
	}
	if c.y < m.my {
		c.y = m.my
	}

	e.display.SetBorderWidth(win, uint32(c.bw))
	e.display.SetBorderColor(win, x11.SchemeNorm)
	e.display.ConfigureWindow(win, c.geometry(), uint32(c.bw), false)

	e.updateSizeHints(c)
	e.updateWMHints(c)

	e.display.SelectInput(win, x11.EventMaskEnterWindow|x11.EventMaskFocusChange|x11.EventMaskPropertyChange|x11.EventMaskStructureNotify)
	e.grabButtonsFor(c, false)

	if !c.isFloating {
		c.isFloating = e.hasManagedTransient(win)
	}
	if c.isFloating {
		e.display.RaiseWindow(win)
	}

	e.clients[c.id] = c
	m.attach(c.id)

	e.display.MoveResize(win, c.geometry())
	e.display.MapWindow(win)
	e.display.SetWMStateNormal(win)

	e.focus(c)
	e.arrange(m)
}

func (e *Engine) hasManagedTransient(win x11.Window) bool {
	parent, ok := e.display.TransientFor(win)
	if !ok {
		return false
	}
	return e.clientForWindow(parent) != nil
}

// unmanage releases a managed client.
func (e *Engine) unmanage(c *Client, destroyed bool) {
	m := e.monitor(c.mon)
	m.detach(c.id)
	m.detachStack(c.id)

	if !destroyed {
		e.display.GrabServer()
		e.display.SetBorderWidth(c.win, uint32(c.oldBW))
		e.display.UngrabButtons(c.win)
		e.display.SetWMStateWithdrawn(c.win)
		e.display.Flush()
		e.display.UngrabServer()
	}

	delete(e.clients, c.id)
	e.focus(nil)
	e.arrange(m)
}

func (e *Engine) updateSizeHints(c *Client) {
	c.hints = e.display.SizeHints(c.win)
	c.isFixed = c.hints.HasMax &&
		c.hints.MaxWidth > 0 && c.hints.MaxWidth == c.hints.MinWidth &&
		c.hints.MaxHeight > 0 && c.hints.MaxHeight == c.hints.MinHeight
}

func (e *Engine) updateWMHints(c *Client) {
	urgent := e.display.IsUrgent(c.win)
	if c.id == e.selMonitor().sel && urgent {
		e.display.ClearUrgent(c.win)
		urgent = false
	}
	c.isUrgent = urgent
}

func (e *Engine) updateTitle(c *Client) {
	name := e.display.WindowTitle(c.win)
	if name == "" {
		name = e.defaultTitle
	}
	c.name = name
}

// setFullscreen implements the ClientMessage(_NET_WM_STATE,
// _NET_WM_STATE_FULLSCREEN) contract: entering saves
// the prior floating state and border, strips the border, and covers
// the whole monitor; leaving restores both.
func (e *Engine) setFullscreen(c *Client, fullscreen bool) {
	if fullscreen == c.isFullscreen {
		return
	}
	m := e.monitor(c.mon)
	if fullscreen {
		c.oldState = c.isFloating
		c.oldBW = c.bw
		c.isFullscreen = true
		c.isFloating = true
		c.bw = 0
		c.saveGeometry()
		e.display.ConfigureWindow(c.win, Rect{X: m.mx, Y: m.my, Width: m.mw, Height: m.mh}, 0, true)
		c.x, c.y, c.w, c.h = m.mx, m.my, m.mw, m.mh
	} else {
		c.isFullscreen = false
		c.isFloating = c.oldState
		c.bw = c.oldBW
		r := c.restoreGeometry()
		e.display.ConfigureWindow(c.win, r, uint32(c.bw), false)
		c.x, c.y, c.w, c.h = r.X, r.Y, r.Width, r.Height
	}
	e.arrange(m)
}
