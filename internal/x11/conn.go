package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/sirupsen/logrus"
)

// Colors names the three compiled-in color schemes (normal, selected,
// urgent) as (fg, bg, border) triples. Caller-supplied at Connect
// time, per a "compile-time tables for colors" contract.
type Colors struct {
	Norm, Sel, Urgent [3]string // [0]=fg [1]=bg [2]=border, each #rrggbb (named colors are not accepted)
}

// Config is the subset of compiled-in configuration the adapter needs
// to allocate resources: font name, colors, and border pixel width.
// The bar height is not configured here; initFont derives it from the
// font metrics, clamped to a minimum.
type Config struct {
	FontName    string
	Colors      Colors
	BorderPixel uint32
}

type conn struct {
	xu    *xgbutil.XUtil
	atoms atomSet
	log   *logrus.Entry

	screenW, screenH int
	root             xproto.Window

	barHeight int
	fontDraw  *fontResources
	colors    colorResources

	numlockMask uint16
}

// fontResources and colorResources are defined in bar_draw.go and
// colors.go respectively; kept as separate files because they each
// wrap a distinct xgbutil subsystem (xgraphics vs raw color
// allocation).

// Connect opens the X display, interns atoms, allocates drawing
// resources, and returns a ready Display. It does not yet select for
// substructure events on the root — callers call BecomeWindowManager
// for that, mirroring dwm's two-phase startup (open display, then
// grab SubstructureRedirect, which can fail if another WM is
// running).
func Connect(cfg Config, log *logrus.Entry) (Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: open display: %w", err)
	}

	if err := keybind.Initialize(xu); err != nil {
		return nil, fmt.Errorf("x11: init keybind: %w", err)
	}
	if err := mousebind.Initialize(xu); err != nil {
		return nil, fmt.Errorf("x11: init mousebind: %w", err)
	}

	c := &conn{
		xu:      xu,
		log:     log,
		screenW: int(xu.Screen().WidthInPixels),
		screenH: int(xu.Screen().HeightInPixels),
		root:    xu.RootWin(),
	}

	atoms, err := internAtoms(c)
	if err != nil {
		return nil, fmt.Errorf("x11: intern atoms: %w", err)
	}
	c.atoms = atoms

	if err := c.initColors(cfg.Colors); err != nil {
		return nil, fmt.Errorf("x11: allocate colors: %w", err)
	}
	if err := c.initFont(cfg.FontName); err != nil {
		return nil, fmt.Errorf("x11: load font: %w", err)
	}

	c.numlockMask = queryNumlockMask(xu)

	return c, nil
}

func (c *conn) Root() Window     { return c.root }
func (c *conn) ScreenWidth() int  { return c.screenW }
func (c *conn) ScreenHeight() int { return c.screenH }

func (c *conn) Flush() { c.xu.Conn().Sync() }
func (c *conn) Sync()  { c.xu.Sync() }

func (c *conn) Close() {
	c.freeFont()
	c.freeColors()
	c.xu.Conn().Close()
}

// StatusText reads the root window's WM_NAME live
// ("Status text: read from the root window's WM_NAME property").
// Returns "" when unset; the engine supplies the default string.
func (c *conn) StatusText() string {
	name, err := icccm.WmNameGet(c.xu, c.root)
	if err != nil {
		return ""
	}
	return name
}

func (c *conn) NetWMStateAtom() Atom           { return c.atoms.netWMState }
func (c *conn) NetWMStateFullscreenAtom() Atom { return c.atoms.netWMStateFullscreen }

func (c *conn) PropertyAtoms() PropAtoms {
	return PropAtoms{
		WMName:         c.atoms.wmName,
		NetWMName:      c.atoms.netWMName,
		WMNormalHints:  c.atoms.wmNormalHints,
		WMHints:        c.atoms.wmHints,
		WMTransientFor: c.atoms.wmTransientFor,
	}
}

func (c *conn) KeysymForKeycode(keycode uint8) Keysym {
	return keybind.KeysymGet(c.xu, xproto.Keycode(keycode), 0)
}

