package wm

import (
	"testing"

	"github.com/goxwm/goxwm/internal/wm/wmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *wmtest.Fake) {
	t.Helper()
	fake := wmtest.New()
	cfg := DefaultConfig()
	e := New(fake, cfg, testLogger(), "goxwm-test")
	e.updateOutputs()
	require.NotEmpty(t, e.monitors)
	return e, fake
}

func addClient(t *testing.T, e *Engine, fake *wmtest.Fake, r Rect) *Client {
	t.Helper()
	win, err := fake.CreateWindow(r, false, 0)
	require.NoError(t, err)
	fake.MapWindow(win)
	e.manage(win)
	c := e.clientForWindow(win)
	require.NotNil(t, c)
	return c
}

func TestArrangeTileSingleClientFillsWorkArea(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	m.lt[m.sellt] = LayoutTile

	c := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	e.arrange(m)

	assert.Equal(t, m.wx, c.x)
	assert.Equal(t, m.wy, c.y)
	assert.Equal(t, m.ww-2*c.bw, c.w)
	assert.Equal(t, m.wh-2*c.bw, c.h)
}

func TestArrangeTileMasterStackSplit(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	m.lt[m.sellt] = LayoutTile
	m.mfact = 0.5

	// attach puts each new client at the head of m.clients, so the
	// client added last is the master and the first one ends up at the
	// bottom of the stack column.
	third := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	second := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	master := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	e.arrange(m)

	assert.Equal(t, int(float64(m.ww)*0.5)-2*master.bw, master.w, "master should take mfact of the work area")
	assert.Equal(t, m.wx+int(float64(m.ww)*0.5), second.x)
	assert.Equal(t, second.x, third.x, "stack clients share the same x column")
	assert.Less(t, second.y, third.y, "stack clients stack top to bottom")
}

func TestArrangeMonocleFillsEachClient(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	m.lt[m.sellt] = LayoutMonocle

	c1 := addClient(t, e, fake, Rect{Width: 50, Height: 50})
	c2 := addClient(t, e, fake, Rect{Width: 50, Height: 50})
	e.arrange(m)

	assert.Equal(t, m.wx, c1.x)
	assert.Equal(t, m.wx, c2.x)
	assert.Equal(t, "[2]", m.ltsymbol)
}

func TestFloatingLayoutLeavesGeometryToTheUser(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	m.lt[m.sellt] = LayoutFloat

	c := addClient(t, e, fake, Rect{X: 40, Y: 40, Width: 200, Height: 100})
	c.isFloating = true
	before := c.geometry()
	e.arrange(m)

	assert.Equal(t, before, c.geometry())
}

func TestVisibleTiledExcludesFloating(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()

	tiled := addClient(t, e, fake, Rect{Width: 10, Height: 10})
	floating := addClient(t, e, fake, Rect{Width: 10, Height: 10})
	floating.isFloating = true

	vis := e.visibleTiled(m)
	assert.Len(t, vis, 1)
	assert.Equal(t, tiled.id, vis[0].id)
}
