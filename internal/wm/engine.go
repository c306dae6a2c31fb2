package wm

import (
	"github.com/goxwm/goxwm/internal/x11"
	"github.com/sirupsen/logrus"
)

// Engine is the window-management core. It owns the client and
// monitor arenas and consumes the display only through the x11.Display
// interface, so it never imports xgb/xgbutil types directly and can be
// driven in tests by a fake (internal/wm/wmtest).
type Engine struct {
	display x11.Display
	cfg     Config
	log     *logrus.Entry

	clients     map[ClientID]*Client
	nextClient  ClientID
	monitors    []*Monitor
	nextMonitor MonitorID
	selmon      MonitorID

	running bool
	reapc   chan spawnedProcess
	pending []x11.Event

	numlockMask  uint16
	wmCheckWin   x11.Window
	defaultTitle string
}

// New builds an Engine bound to d with cfg as its compiled-in
// configuration. It does not yet talk to the display; call Start to
// become the window manager.
func New(d x11.Display, cfg Config, log *logrus.Entry, defaultTitle string) *Engine {
	return &Engine{
		display:      d,
		cfg:          cfg,
		log:          log,
		clients:      make(map[ClientID]*Client),
		reapc:        make(chan spawnedProcess, 8),
		defaultTitle: defaultTitle,
	}
}

func (e *Engine) client(id ClientID) *Client {
	if id == noClient {
		return nil
	}
	return e.clients[id]
}

func (e *Engine) monitor(id MonitorID) *Monitor {
	for _, m := range e.monitors {
		if m.id == id {
			return m
		}
	}
	return nil
}

func (e *Engine) monitorByNum(num int) *Monitor {
	for _, m := range e.monitors {
		if m.num == num {
			return m
		}
	}
	return nil
}

func (e *Engine) selMonitor() *Monitor { return e.monitor(e.selmon) }

// clientForWindow finds the managed client wrapping win, if any.
func (e *Engine) clientForWindow(win x11.Window) *Client {
	for _, c := range e.clients {
		if c.win == win {
			return c
		}
	}
	return nil
}

// resizeClient is the single chokepoint every layout and mouse action
// goes through to move/resize a client: it enforces
// size hints, clamps to the relevant bounds, and only issues X
// requests when the resulting geometry actually differs from what the
// client already has.
func (e *Engine) resizeClient(c *Client, r Rect, interact bool) {
	m := e.monitor(c.mon)
	if m == nil {
		return
	}

	bounds := Rect{X: m.mx, Y: m.my, Width: m.mw, Height: m.mh}
	if !interact {
		bounds = Rect{X: m.wx, Y: m.wy, Width: m.ww, Height: m.wh}
	}

	r = clampToScreen(r, c.bw, bounds)
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	bh := e.display.BarHeight()
	if r.Height < bh {
		r.Height = bh
	}

	r = applySizeHints(r, c.hints, c.isFloating, e.cfg.ResizeHints || c.isFixed)

	if r.X == c.x && r.Y == c.y && r.Width == c.w && r.Height == c.h {
		return
	}

	c.x, c.y, c.w, c.h = r.X, r.Y, r.Width, r.Height
	if err := e.display.ConfigureWindow(c.win, r, uint32(c.bw), false); err != nil {
		e.log.WithError(err).WithField("window", c.win).Warn("configure window failed")
	}
}

// showHide hides clients off-screen when their tags aren't visible: visible clients get
// moved (and, if floating or the layout has no arrange function,
// resized) onto screen; invisible ones are pushed off to the right
// where they stay mapped but unseen.
func (e *Engine) showHide(m *Monitor) {
	for _, id := range m.stack {
		c := e.client(id)
		if c == nil {
			continue
		}
		if e.isVisible(c) {
			e.display.MoveResize(c.win, Rect{X: c.x, Y: c.y, Width: c.w, Height: c.h})
			if c.isFloating || m.lt[m.sellt].Arrange == nil {
				e.resizeClient(c, c.geometry(), false)
			}
		}
	}
	for i := len(m.stack) - 1; i >= 0; i-- {
		c := e.client(m.stack[i])
		if c == nil {
			continue
		}
		if !e.isVisible(c) {
			e.display.MoveResize(c.win, Rect{X: c.x + 2*e.display.ScreenWidth(), Y: c.y, Width: c.w, Height: c.h})
		}
	}
}

// arrangeMon applies the selected layout to m: stamp its symbol, call
// the layout's Arrange (if any), then restack.
func (e *Engine) arrangeMon(m *Monitor) {
	m.ltsymbol = m.lt[m.sellt].Symbol
	if fn := m.lt[m.sellt].Arrange; fn != nil {
		fn(e, m)
	}
	e.restack(m)
}

// arrange runs showHide followed by the monitor's layout function,
// then restacks — for every monitor when m is nil.
func (e *Engine) arrange(m *Monitor) {
	if m != nil {
		e.showHide(m)
	} else {
		for _, mm := range e.monitors {
			e.showHide(mm)
		}
	}
	if m != nil {
		e.arrangeMon(m)
	} else {
		for _, mm := range e.monitors {
			e.arrangeMon(mm)
		}
	}
}
