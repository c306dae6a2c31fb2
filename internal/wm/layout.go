package wm

import "strconv"

// Layout pairs a display symbol with the pure function that arranges
// a monitor's visible tiled clients. A nil Arrange means free-floating
// (a layout with no tiling function): show_hide still runs, but no function
// repositions clients, so users place them with the mouse.
type Layout struct {
	Symbol  string
	Arrange func(e *Engine, m *Monitor)
}

// compiled-in layouts; DefaultConfig lists these in Config.Layouts,
// whose first two entries fill a new monitor's two layout slots.
// setlayout toggles between those slots or puts a given layout in the
// current one; it does not cycle through Config.Layouts.
var (
	LayoutTile    = &Layout{Symbol: "[]=", Arrange: arrangeTile}
	LayoutFloat   = &Layout{Symbol: "><>", Arrange: nil}
	LayoutMonocle = &Layout{Symbol: "[M]", Arrange: arrangeMonocle}
)

// visibleTiled returns the monitor's visible, non-floating clients in
// attach order — the sequence V = [v1..vn] used for
// the tile layout.
func (e *Engine) visibleTiled(m *Monitor) []*Client {
	var out []*Client
	for _, id := range m.clients {
		c := e.client(id)
		if c == nil || !e.isVisible(c) || c.isFloating {
			continue
		}
		out = append(out, c)
	}
	return out
}

// visibleClients returns every visible client on m, tiled or not, in
// attach order — used by monocle and focusstack.
func (e *Engine) visibleClients(m *Monitor) []*Client {
	var out []*Client
	for _, id := range m.clients {
		c := e.client(id)
		if c == nil || !e.isVisible(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (e *Engine) isVisible(c *Client) bool {
	m := e.monitor(c.mon)
	if m == nil {
		return false
	}
	return c.tags&m.tagset[m.seltags] != 0
}

// arrangeTile lays out a master column
// at mfact width (full width if it's the only client) and a stack
// column split into equal-height strips, the last absorbing the
// remainder of an inexact division.
func arrangeTile(e *Engine, m *Monitor) {
	clients := e.visibleTiled(m)
	n := len(clients)
	if n == 0 {
		return
	}

	mw := m.ww
	if n > 1 {
		mw = int(float64(m.ww) * m.mfact)
	}

	bh := e.display.BarHeight()

	// master
	master := clients[0]
	e.resizeClient(master, Rect{
		X: m.wx, Y: m.wy,
		Width:  mw - 2*master.borderWidth(),
		Height: m.wh - 2*master.borderWidth(),
	}, false)
	if n == 1 {
		return
	}

	// stack
	stackN := n - 1
	stackX := m.wx + mw
	stackW := m.ww - mw
	remaining := m.wh
	y := m.wy
	for i := 1; i < n; i++ {
		c := clients[i]
		h := remaining
		if i < n-1 {
			h = m.wh / stackN
			if h < bh {
				h = m.wh
			}
		}
		e.resizeClient(c, Rect{X: stackX, Y: y, Width: stackW - 2*c.borderWidth(), Height: h - 2*c.borderWidth()}, false)
		y += h
		remaining -= h
	}
}

// arrangeMonocle stacks every visible client to fill the work area
// minus its own border, and overrides the layout symbol to "[n]".
func arrangeMonocle(e *Engine, m *Monitor) {
	clients := e.visibleClients(m)
	m.ltsymbol = monocleSymbol(len(clients))
	for _, c := range clients {
		e.resizeClient(c, Rect{
			X: m.wx, Y: m.wy,
			Width:  m.ww - 2*c.borderWidth(),
			Height: m.wh - 2*c.borderWidth(),
		}, false)
	}
}

func monocleSymbol(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}
