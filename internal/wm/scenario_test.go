package wm

import (
	"testing"

	"github.com/goxwm/goxwm/internal/x11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullscreenRoundTrip(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	c := addClient(t, e, fake, Rect{X: 10, Y: 10, Width: 300, Height: 200})
	origBW := c.bw
	// Under the default tile layout manage has already tiled the client,
	// so the geometry to restore is the tiled one, not the mapped rect.
	orig := c.geometry()

	e.dispatch(x11.Event{
		Kind: x11.EventClientMessage, Window: c.win,
		MessageType: fake.NetStateAtom, Data32: [5]uint32{1, uint32(fake.FullscreenAtom), 0, 0, 0},
	})

	assert.Equal(t, 0, c.bw)
	assert.Equal(t, m.mx, c.x)
	assert.Equal(t, m.my, c.y)
	assert.Equal(t, m.mw, c.w)
	assert.Equal(t, m.mh, c.h)
	require.True(t, c.isFullscreen)

	e.dispatch(x11.Event{
		Kind: x11.EventClientMessage, Window: c.win,
		MessageType: fake.NetStateAtom, Data32: [5]uint32{0, uint32(fake.FullscreenAtom), 0, 0, 0},
	})

	assert.False(t, c.isFullscreen)
	assert.Equal(t, origBW, c.bw)
	assert.Equal(t, orig.X, c.x)
	assert.Equal(t, orig.Y, c.y)
	assert.Equal(t, orig.Width, c.w)
	assert.Equal(t, orig.Height, c.h)
}

func TestKillClientSendsPoliteDeleteWhenSupported(t *testing.T) {
	e, fake := newTestEngine(t)
	c := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	fake.Windows[c.win].Protocols = []string{"WM_DELETE_WINDOW"}
	e.focus(c)

	actionKillClient(e, Arg{})

	assert.Contains(t, fake.DeleteSent, c.win)
	assert.NotContains(t, fake.Destroyed, c.win)
	assert.NotNil(t, e.clientForWindow(c.win), "client record stays managed until it actually unmaps")
}

func TestKillClientDestroysWhenProtocolUnsupported(t *testing.T) {
	e, fake := newTestEngine(t)
	c := addClient(t, e, fake, Rect{Width: 100, Height: 100})
	e.focus(c)

	actionKillClient(e, Arg{})

	assert.Contains(t, fake.Destroyed, c.win)
}

func TestZoomPromotesSelectedNonMasterClient(t *testing.T) {
	e, fake := newTestEngine(t)
	m := e.selMonitor()
	m.lt[m.sellt] = LayoutTile

	first := addClient(t, e, fake, Rect{Width: 10, Height: 10})
	second := addClient(t, e, fake, Rect{Width: 10, Height: 10})
	require.Equal(t, second.id, m.clients[0], "most recently attached client starts as master")

	e.focus(first)
	actionZoom(e, Arg{})

	assert.Equal(t, first.id, m.clients[0])
}

func TestUnmanageRestoresBorderWidth(t *testing.T) {
	e, fake := newTestEngine(t)
	c := addClient(t, e, fake, Rect{Width: 10, Height: 10})
	c.oldBW = 2

	e.unmanage(c, false)

	assert.Equal(t, uint32(2), fake.Windows[c.win].BorderWidth)
	assert.Nil(t, e.clientForWindow(c.win))
}

func TestManageAppliesMatchingRuleTags(t *testing.T) {
	e, fake := newTestEngine(t)
	e.cfg.Rules = []Rule{{Class: "Firefox", Tags: 1 << 3}}

	win, err := fake.CreateWindow(Rect{Width: 10, Height: 10}, false, 0)
	require.NoError(t, err)
	fake.Windows[win].Class = "Firefox"
	fake.MapWindow(win)

	e.manage(win)
	c := e.clientForWindow(win)
	require.NotNil(t, c)
	assert.Equal(t, uint32(1<<3), c.tags)
}
