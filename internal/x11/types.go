// Package x11 is the display adapter: the only package in goxwm that
// speaks the X11 wire protocol. It exposes a narrow interface the
// window-management engine in internal/wm consumes; nothing outside
// this package imports xgb or xgbutil types directly.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Rect is a screen-space rectangle in device pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) CenterX() int { return r.X + r.Width/2 }
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields the engine cares
// about. Zero values mean "unconstrained" for that axis.
type SizeHints struct {
	BaseWidth, BaseHeight   int
	WidthInc, HeightInc     int
	MinWidth, MinHeight     int
	MaxWidth, MaxHeight     int
	MinAspect, MaxAspect    float64 // 0 means unset
	HasMinAspect            bool
	HasMaxAspect            bool
	HasMax                  bool
}

// CursorShape names the cursors the engine needs from the adapter.
// Values match the standard X cursor font glyph names.
type CursorShape int

const (
	CursorNormal CursorShape = iota
	CursorMove
	CursorResize
)

// KeyBinding is one compiled-in key grab: a modifier mask and a
// keysym to resolve to keycodes at grab time.
type KeyBinding struct {
	Mod   uint16
	Sym   xproto.Keysym
	Index int // index into the caller's action table
}

// ClickRegion identifies where a button press landed: tag bar, layout
// symbol, window title, client window, or elsewhere.
type ClickRegion int

const (
	ClickTagBar ClickRegion = iota
	ClickLtSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
)

// ButtonBinding is one compiled-in button grab.
type ButtonBinding struct {
	Region ClickRegion
	Mod    uint16
	Button xproto.Button
	Index  int
}

// DrawCmd is one primitive in a bar redraw batch. The adapter turns a
// slice of these into xgraphics draw calls in a single pass per
// Expose, so the engine never touches font/GC resources itself.
type DrawCmd struct {
	Kind   DrawKind
	Rect   Rect
	Text   string
	Scheme ColorScheme
	Filled bool // for DrawSquare: filled vs outlined
}

type DrawKind int

const (
	DrawClearRect DrawKind = iota
	DrawText
	DrawSquare
)

// ColorScheme selects one of the compiled-in (fg, bg, border) triples.
type ColorScheme int

const (
	SchemeNorm ColorScheme = iota
	SchemeSel
	SchemeUrgent
)

// Window is a re-export so callers outside this package can name the
// type without importing xgb/xproto themselves.
type Window = xproto.Window
type Atom = xproto.Atom
type Keysym = xproto.Keysym
type Button = xproto.Button

// Modifier masks and button indices, re-exported so Config tables in
// internal/wm can name them without an xproto import.
const (
	ShiftMask   = xproto.ModMaskShift
	LockMask    = xproto.ModMaskLock
	ControlMask = xproto.ModMaskControl
	Mod1Mask    = xproto.ModMask1
	Mod4Mask    = xproto.ModMask4
)

const (
	Button1 = xproto.ButtonIndex1
	Button2 = xproto.ButtonIndex2
	Button3 = xproto.ButtonIndex3
)

// Event masks callers pass to SelectInput, re-exported for the same
// reason as the modifier masks above.
const (
	EventMaskEnterWindow     = xproto.EventMaskEnterWindow
	EventMaskFocusChange     = xproto.EventMaskFocusChange
	EventMaskPropertyChange  = xproto.EventMaskPropertyChange
	EventMaskStructureNotify = xproto.EventMaskStructureNotify
	EventMaskButtonPress     = xproto.EventMaskButtonPress
	EventMaskExposure        = xproto.EventMaskExposure
)

// ConfigureRequest/ConfigureWindow value-mask bits, re-exported so
// dispatch can test ev.ValueMask without an xproto import.
const (
	ConfigWindowX           = xproto.ConfigWindowX
	ConfigWindowY           = xproto.ConfigWindowY
	ConfigWindowWidth       = xproto.ConfigWindowWidth
	ConfigWindowHeight      = xproto.ConfigWindowHeight
	ConfigWindowBorderWidth = xproto.ConfigWindowBorderWidth
)

// PropAtoms is the subset of interned atoms the engine compares
// PropertyNotify.Atom against to decide what changed.
type PropAtoms struct {
	WMName        Atom
	NetWMName     Atom
	WMNormalHints Atom
	WMHints       Atom
	WMTransientFor Atom
}
