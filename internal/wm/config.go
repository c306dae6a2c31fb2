package wm

import "github.com/goxwm/goxwm/internal/x11"

// Rule is one entry in the compiled-in rules table: a client whose
// class, instance, or title contains the given substring (empty means
// "don't care" for that field) gets the tags/floating/monitor
// treatment below when first managed. Matching is substring-only —
// never promoted to regex or glob.
type Rule struct {
	Class, Instance, Title string
	Tags                   uint32
	Floating               bool
	Monitor                int // -1 means "the monitor it mapped on"
}

// KeyAction binds a modifier+keysym to an action function and its
// argument. keyBindings sets x11.KeyBinding.Index to this entry's
// position in Config.Keys; a KeyPress is matched back to its action by
// scanning Config.Keys for the event's keysym and modifiers.
type KeyAction struct {
	Mod   uint16
	Sym   x11.Keysym
	Fn    func(*Engine, Arg)
	Arg   Arg
}

// ButtonAction is the button-table analogue of KeyAction.
type ButtonAction struct {
	Region x11.ClickRegion
	Mod    uint16
	Button x11.Button
	Fn     func(*Engine, Arg)
	Arg    Arg
}

// Config is the compiled-in configuration surface: colors, font name,
// tag labels, layouts, rules, keys, buttons, border pixel, snap
// distance, master fraction, bar position, and resize-hint respect.
// There is deliberately no config-file loader — a Go program's own
// source is the compile-time table.
type Config struct {
	Tags    []string
	Layouts []*Layout
	Rules   []Rule
	Keys    []KeyAction
	Buttons []ButtonAction

	MFact       float64
	BorderPx    int
	SnapPx      int
	ShowBar     bool
	TopBar      bool
	ResizeHints bool

	FontName string
	Colors   x11.Colors
}

// keyBindings projects Config.Keys into the adapter's grab table.
func (c *Config) keyBindings() []x11.KeyBinding {
	out := make([]x11.KeyBinding, len(c.Keys))
	for i, k := range c.Keys {
		out[i] = x11.KeyBinding{Mod: k.Mod, Sym: k.Sym, Index: i}
	}
	return out
}

// buttonBindings projects Config.Buttons into the adapter's grab
// table, filtered to the ClickClientWin region since that's the only
// region GrabButtonsForClient grabs on a per-client basis; bar clicks
// are dispatched from raw ButtonPress events against static regions,
// not grabbed individually.
func (c *Config) buttonBindings() []x11.ButtonBinding {
	var out []x11.ButtonBinding
	for i, b := range c.Buttons {
		if b.Region != x11.ClickClientWin {
			continue
		}
		out = append(out, x11.ButtonBinding{Region: b.Region, Mod: b.Mod, Button: b.Button, Index: i})
	}
	return out
}

// DefaultConfig returns goxwm's built-in bindings: nine numeric tags,
// the three compiled layouts tile/float/monocle, mod4 as the
// primary modifier (dwm's convention, avoided clashing with desktop
// environments that reserve mod1), and the full action set wired by
// name.
func DefaultConfig() Config {
	tags := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

	cfg := Config{
		Tags:        tags,
		Layouts:     []*Layout{LayoutTile, LayoutFloat, LayoutMonocle},
		MFact:       0.55,
		BorderPx:    1,
		SnapPx:      32,
		ShowBar:     true,
		TopBar:      true,
		ResizeHints: true,
		FontName:    "monospace:size=10",
		Colors: x11.Colors{
			Norm:   [3]string{"#bbbbbb", "#222222", "#444444"},
			Sel:    [3]string{"#eeeeee", "#005577", "#005577"},
			Urgent: [3]string{"#222222", "#bb0000", "#bb0000"},
		},
	}

	const modKey = x11.Mod4Mask
	const shift = x11.ShiftMask

	for i, tag := range tags {
		mask := uint32(1) << i
		cfg.Keys = append(cfg.Keys,
			KeyAction{Mod: modKey, Sym: x11.Keysym('1' + i), Fn: actionView, Arg: Arg{UInt: mask}},
			KeyAction{Mod: modKey | shift, Sym: x11.Keysym('1' + i), Fn: actionTag, Arg: Arg{UInt: mask}},
			KeyAction{Mod: modKey | x11.ControlMask, Sym: x11.Keysym('1' + i), Fn: actionToggleView, Arg: Arg{UInt: mask}},
			KeyAction{Mod: modKey | x11.ControlMask | shift, Sym: x11.Keysym('1' + i), Fn: actionToggleTag, Arg: Arg{UInt: mask}},
		)
	}

	cfg.Keys = append(cfg.Keys,
		KeyAction{Mod: modKey | shift, Sym: x11.XKReturn, Fn: actionSpawn, Arg: Arg{Str: []string{"xterm"}}},
		KeyAction{Mod: modKey, Sym: x11.XKJ, Fn: actionFocusStack, Arg: Arg{Int: 1}},
		KeyAction{Mod: modKey, Sym: x11.XKK, Fn: actionFocusStack, Arg: Arg{Int: -1}},
		KeyAction{Mod: modKey, Sym: x11.XKH, Fn: actionSetMFact, Arg: Arg{Float: -0.05}},
		KeyAction{Mod: modKey, Sym: x11.XKL, Fn: actionSetMFact, Arg: Arg{Float: 0.05}},
		KeyAction{Mod: modKey, Sym: x11.XKReturn, Fn: actionZoom},
		KeyAction{Mod: modKey, Sym: x11.XKTab, Fn: actionView, Arg: Arg{UInt: 0}},
		KeyAction{Mod: modKey | shift, Sym: x11.XKC, Fn: actionKillClient},
		KeyAction{Mod: modKey, Sym: x11.XKT, Fn: actionSetLayout, Arg: Arg{Layout: LayoutTile}},
		KeyAction{Mod: modKey, Sym: x11.XKF, Fn: actionSetLayout, Arg: Arg{Layout: LayoutFloat}},
		KeyAction{Mod: modKey, Sym: x11.XKM, Fn: actionSetLayout, Arg: Arg{Layout: LayoutMonocle}},
		KeyAction{Mod: modKey, Sym: x11.XKSpace, Fn: actionSetLayout},
		KeyAction{Mod: modKey | shift, Sym: x11.XKSpace, Fn: actionToggleFloating},
		KeyAction{Mod: modKey, Sym: x11.XKB, Fn: actionToggleBar},
		KeyAction{Mod: modKey | shift, Sym: x11.XKQ, Fn: actionQuit},
		KeyAction{Mod: modKey, Sym: x11.XKPeriod, Fn: actionFocusMon, Arg: Arg{Int: 1}},
		KeyAction{Mod: modKey, Sym: x11.XKComma, Fn: actionFocusMon, Arg: Arg{Int: -1}},
		KeyAction{Mod: modKey | shift, Sym: x11.XKPeriod, Fn: actionTagMon, Arg: Arg{Int: 1}},
		KeyAction{Mod: modKey | shift, Sym: x11.XKComma, Fn: actionTagMon, Arg: Arg{Int: -1}},
	)

	cfg.Buttons = []ButtonAction{
		{Region: x11.ClickLtSymbol, Button: x11.Button1, Fn: actionSetLayout},
		{Region: x11.ClickWinTitle, Button: x11.Button2, Fn: actionZoom},
		{Region: x11.ClickClientWin, Mod: modKey, Button: x11.Button1, Fn: actionMoveMouse},
		{Region: x11.ClickClientWin, Mod: modKey, Button: x11.Button2, Fn: actionToggleFloating},
		{Region: x11.ClickClientWin, Mod: modKey, Button: x11.Button3, Fn: actionResizeMouse},
	}
	// Tag-bar clicks carry no Arg here: dispatch resolves which tag box
	// was hit by click position and fills in Arg.UInt before invoking
	// Fn, the same way dwm's buttonpress recomputes arg.ui from x
	// rather than storing one button binding per tag.
	cfg.Buttons = append(cfg.Buttons,
		ButtonAction{Region: x11.ClickTagBar, Button: x11.Button1, Fn: actionView},
		ButtonAction{Region: x11.ClickTagBar, Button: x11.Button3, Fn: actionToggleView},
		ButtonAction{Region: x11.ClickTagBar, Mod: shift, Button: x11.Button1, Fn: actionTag},
		ButtonAction{Region: x11.ClickTagBar, Mod: shift, Button: x11.Button3, Fn: actionToggleTag},
	)

	return cfg
}
