package x11

// Display is the narrow façade the engine in internal/wm consumes.
// Every method either performs one or more X requests and returns,
// or is a pure local query against cached state (atoms, keymap). No
// method blocks except NextEvent.
//
// Implementations must make requests observable by the server in the
// order issued and must not buffer writes across calls without an
// explicit Flush — the engine relies on request ordering to reason
// about state it just committed.
type Display interface {
	Root() Window
	ScreenWidth() int
	ScreenHeight() int
	OutputGeometries() ([]Rect, error)
	ExistingWindows() ([]Window, error)

	CreateWindow(r Rect, overrideRedirect bool, eventMask uint32) (Window, error)
	DestroyWindow(w Window)
	MapWindow(w Window)
	UnmapWindow(w Window)
	ConfigureWindow(w Window, r Rect, borderWidth uint32, raise bool) error
	RaiseWindow(w Window)
	LowerWindowBelow(w, sibling Window)
	MoveResize(w Window, r Rect)
	SetBorderWidth(w Window, bw uint32)
	SetBorderColor(w Window, scheme ColorScheme)
	SelectInput(w Window, mask uint32) error
	WindowAttributes(w Window) (overrideRedirect bool, mapped bool, err error)
	InitialGeometry(w Window) (r Rect, borderWidth uint32, err error)

	NumlockMask() uint16
	RefreshKeyMap()
	GrabKeys(keys []KeyBinding) error
	GrabButtonsForClient(w Window, buttons []ButtonBinding, focused bool) error
	UngrabButtons(w Window)
	GrabPointer(cursor CursorShape) bool
	UngrabPointer()
	GrabServer()
	UngrabServer()
	SetInputFocus(w Window)
	SetInputFocusRoot()
	QueryPointer() (rootX, rootY int16, child Window, err error)
	WarpPointer(w Window, x, y int16)

	WindowTitle(w Window) string
	WindowClassInstance(w Window) (class, instance string)
	IsUrgent(w Window) bool
	ClearUrgent(w Window)
	SizeHints(w Window) SizeHints
	TransientFor(w Window) (Window, bool)
	SupportsDeleteWindow(w Window) bool
	SendDeleteWindow(w Window, timestamp uint32)
	SetWMStateNormal(w Window)
	SetWMStateWithdrawn(w Window)
	SendConfigureNotify(w Window, r Rect, borderWidth uint32)
	SendConfigureNotifyRaw(w Window, r Rect, borderWidth uint32)
	PassThroughConfigure(w Window, r Rect, borderWidth uint32, valueMask uint16, sibling Window, stackMode uint8)

	SetSupportedAtoms(names []string)
	SetWMCheckWindow(check Window) error
	StatusText() string
	NetWMStateAtom() Atom
	NetWMStateFullscreenAtom() Atom
	PropertyAtoms() PropAtoms
	KeysymForKeycode(keycode uint8) Keysym

	DrawBar(w Window, r Rect, cmds []DrawCmd)
	TextWidth(s string) int
	BarHeight() int

	NextEvent() (Event, error)
	Poll() (Event, bool)
	Flush()
	Sync()
	Close()
}
