package wm

import "github.com/goxwm/goxwm/internal/x11"

// moveMouse runs the move modal loop: grab the
// pointer with a move cursor, track motion relative to the grab
// origin, snap to the owning monitor's work-area edges within SnapPx,
// detach a tiled client to floating once the drag clears the snap
// threshold, and migrate monitors on release if the client's center
// ended up elsewhere.
func (e *Engine) moveMouse(c *Client) {
	if c.isFullscreen {
		return
	}
	if !e.display.GrabPointer(x11.CursorMove) {
		return
	}

	origX, origY := c.x, c.y
	startX, startY, _, err := e.display.QueryPointer()
	if err != nil {
		e.display.UngrabPointer()
		return
	}

	for {
		ev, err := e.nextEvent()
		if err != nil {
			break
		}
		switch ev.Kind {
		case x11.EventMotionNotify:
			ev = e.drainMotion(ev)
			dx := int(ev.RootX) - int(startX)
			dy := int(ev.RootY) - int(startY)
			nx, ny := origX+dx, origY+dy

			m := e.monitor(c.mon)
			nx, ny = snapToEdges(nx, ny, c.w, c.h, c.bw, m, e.cfg.SnapPx)

			if !c.isFloating && (abs(dx) > e.cfg.SnapPx || abs(dy) > e.cfg.SnapPx) {
				if m.lt[m.sellt].Arrange != nil {
					c.isFloating = true
					e.arrange(m)
				}
			}
			if c.isFloating {
				e.resizeClient(c, Rect{X: nx, Y: ny, Width: c.w, Height: c.h}, true)
			}
		case x11.EventButtonRelease:
			e.display.UngrabPointer()
			e.drainEnterNotify()
			e.migrateToPointerMonitor(c)
			return
		default:
			e.dispatch(ev)
		}
	}
	e.display.UngrabPointer()
}

// resizeMouse runs the resize modal loop, identical
// in structure to move but growing the bottom-right corner instead of
// translating the whole window.
func (e *Engine) resizeMouse(c *Client) {
	if c.isFullscreen {
		return
	}
	if !e.display.GrabPointer(x11.CursorResize) {
		return
	}
	e.display.WarpPointer(c.win, int16(c.w+c.bw-1), int16(c.h+c.bw-1))

	origW, origH := c.w, c.h
	startX, startY, _, err := e.display.QueryPointer()
	if err != nil {
		e.display.UngrabPointer()
		return
	}

	for {
		ev, err := e.nextEvent()
		if err != nil {
			break
		}
		switch ev.Kind {
		case x11.EventMotionNotify:
			ev = e.drainMotion(ev)
			dx := int(ev.RootX) - int(startX)
			dy := int(ev.RootY) - int(startY)
			nw, nh := origW+dx, origH+dy
			if nw < 1 {
				nw = 1
			}
			if nh < 1 {
				nh = 1
			}

			m := e.monitor(c.mon)
			if !c.isFloating && (abs(nw-c.w) > e.cfg.SnapPx || abs(nh-c.h) > e.cfg.SnapPx) {
				if m.lt[m.sellt].Arrange != nil {
					c.isFloating = true
					e.arrange(m)
				}
			}
			if c.isFloating {
				e.resizeClient(c, Rect{X: c.x, Y: c.y, Width: nw, Height: nh}, true)
			}
		case x11.EventButtonRelease:
			e.display.UngrabPointer()
			e.drainEnterNotify()
			e.migrateToPointerMonitor(c)
			return
		default:
			e.dispatch(ev)
		}
	}
	e.display.UngrabPointer()
}

// drainMotion coalesces a burst of queued MotionNotify events into the
// most recent one, so a fast drag doesn't process stale intermediate
// positions.
func (e *Engine) drainMotion(latest x11.Event) x11.Event {
	for {
		ev, ok := e.display.Poll()
		if !ok || ev.Kind != x11.EventMotionNotify {
			if ok {
				e.pending = append(e.pending, ev)
			}
			return latest
		}
		latest = ev
	}
}

func snapToEdges(x, y, w, h, bw int, m *Monitor, snap int) (int, int) {
	if abs(x-m.wx) < snap {
		x = m.wx
	} else if abs(m.wx+m.ww-(x+w+2*bw)) < snap {
		x = m.wx + m.ww - w - 2*bw
	}
	if abs(y-m.wy) < snap {
		y = m.wy
	} else if abs(m.wy+m.wh-(y+h+2*bw)) < snap {
		y = m.wy + m.wh - h - 2*bw
	}
	return x, y
}

// migrateToPointerMonitor moves c to whichever monitor now contains
// its center, per the "if the client's center now lies on
// a different monitor, migrate it."
func (e *Engine) migrateToPointerMonitor(c *Client) {
	cx, cy := c.geometry().CenterX(), c.geometry().CenterY()
	for _, m := range e.monitors {
		if m.id == c.mon {
			continue
		}
		if cx >= m.mx && cx < m.mx+m.mw && cy >= m.my && cy < m.my+m.mh {
			old := e.monitor(c.mon)
			old.detach(c.id)
			old.detachStack(c.id)
			c.mon = m.id
			m.attach(c.id)
			e.selmon = m.id
			e.focus(c)
			e.arrange(nil)
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
