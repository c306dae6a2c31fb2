// Package wmtest provides an in-memory fake of x11.Display so
// internal/wm's engine logic can be exercised without a running X
// server, the same isolation other_examples-style adapter interfaces
// in the retrieval pack use to make protocol-heavy code testable.
package wmtest

import (
	"fmt"

	"github.com/goxwm/goxwm/internal/x11"
)

// WindowState records everything the fake tracks about one window, so
// tests can assert on geometry, mapped state, and border color after
// driving the engine.
type WindowState struct {
	Rect        x11.Rect
	BorderWidth uint32
	Mapped      bool
	Scheme      x11.ColorScheme
	Class       string
	Instance    string
	Title       string
	Hints       x11.SizeHints
	Urgent      bool
	Transient   x11.Window
	HasTransient bool
	Protocols   []string
}

// Fake is a scriptable x11.Display. Tests seed it with windows and
// outputs, queue events via Queue, and drive the engine with it
// directly — no type assertion back to a concrete adapter is needed
// since Fake implements the interface in full.
type Fake struct {
	RootWin    x11.Window
	Outputs    []x11.Rect
	Windows    map[x11.Window]*WindowState
	nextWin    x11.Window
	events     []x11.Event
	barHeight  int
	Numlock    uint16
	DeleteSent []x11.Window
	Destroyed  []x11.Window
	Configured []x11.Window

	NetStateAtom       x11.Atom
	FullscreenAtom     x11.Atom
	AtomsCache         x11.PropAtoms
	Keymap             map[uint8]x11.Keysym
	StatusTextValue    string
}

// New returns a Fake with a single 1920x1080 output and no windows.
func New() *Fake {
	return &Fake{
		RootWin:   1,
		Outputs:   []x11.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		Windows:   make(map[x11.Window]*WindowState),
		nextWin:   2,
		barHeight: 20,
		Keymap:    make(map[uint8]x11.Keysym),
		NetStateAtom:   100,
		FullscreenAtom: 101,
	}
}

func (f *Fake) Root() x11.Window     { return f.RootWin }
func (f *Fake) ScreenWidth() int     { return f.Outputs[0].Width }
func (f *Fake) ScreenHeight() int    { return f.Outputs[0].Height }
func (f *Fake) OutputGeometries() ([]x11.Rect, error) { return f.Outputs, nil }

func (f *Fake) ExistingWindows() ([]x11.Window, error) {
	var out []x11.Window
	for w := range f.Windows {
		out = append(out, w)
	}
	return out, nil
}

func (f *Fake) CreateWindow(r x11.Rect, overrideRedirect bool, eventMask uint32) (x11.Window, error) {
	w := f.nextWin
	f.nextWin++
	f.Windows[w] = &WindowState{Rect: r}
	return w, nil
}

func (f *Fake) DestroyWindow(w x11.Window) {
	f.Destroyed = append(f.Destroyed, w)
	delete(f.Windows, w)
}

func (f *Fake) MapWindow(w x11.Window) {
	if s := f.Windows[w]; s != nil {
		s.Mapped = true
	}
}

func (f *Fake) UnmapWindow(w x11.Window) {
	if s := f.Windows[w]; s != nil {
		s.Mapped = false
	}
}

func (f *Fake) ConfigureWindow(w x11.Window, r x11.Rect, bw uint32, raise bool) error {
	s := f.Windows[w]
	if s == nil {
		return fmt.Errorf("unknown window %d", w)
	}
	s.Rect = r
	s.BorderWidth = bw
	f.Configured = append(f.Configured, w)
	return nil
}

func (f *Fake) RaiseWindow(w x11.Window)          {}
func (f *Fake) LowerWindowBelow(w, sibling x11.Window) {}

func (f *Fake) MoveResize(w x11.Window, r x11.Rect) {
	if s := f.Windows[w]; s != nil {
		s.Rect = r
	}
}

func (f *Fake) SetBorderWidth(w x11.Window, bw uint32) {
	if s := f.Windows[w]; s != nil {
		s.BorderWidth = bw
	}
}

func (f *Fake) SetBorderColor(w x11.Window, scheme x11.ColorScheme) {
	if s := f.Windows[w]; s != nil {
		s.Scheme = scheme
	}
}

func (f *Fake) SelectInput(w x11.Window, mask uint32) error { return nil }

func (f *Fake) WindowAttributes(w x11.Window) (bool, bool, error) {
	s := f.Windows[w]
	if s == nil {
		return false, false, fmt.Errorf("unknown window %d", w)
	}
	return false, s.Mapped, nil
}

func (f *Fake) InitialGeometry(w x11.Window) (x11.Rect, uint32, error) {
	s := f.Windows[w]
	if s == nil {
		return x11.Rect{}, 0, fmt.Errorf("unknown window %d", w)
	}
	return s.Rect, s.BorderWidth, nil
}

func (f *Fake) NumlockMask() uint16 { return f.Numlock }
func (f *Fake) RefreshKeyMap()      {}

func (f *Fake) GrabKeys(keys []x11.KeyBinding) error { return nil }

func (f *Fake) GrabButtonsForClient(w x11.Window, buttons []x11.ButtonBinding, focused bool) error {
	return nil
}

func (f *Fake) UngrabButtons(w x11.Window) {}
func (f *Fake) GrabPointer(cursor x11.CursorShape) bool { return true }
func (f *Fake) UngrabPointer()                          {}
func (f *Fake) GrabServer()                             {}
func (f *Fake) UngrabServer()                           {}
func (f *Fake) SetInputFocus(w x11.Window)              {}
func (f *Fake) SetInputFocusRoot()                      {}

func (f *Fake) QueryPointer() (int16, int16, x11.Window, error) { return 0, 0, f.RootWin, nil }
func (f *Fake) WarpPointer(w x11.Window, x, y int16)             {}

func (f *Fake) WindowTitle(w x11.Window) string {
	if s := f.Windows[w]; s != nil {
		return s.Title
	}
	return ""
}

func (f *Fake) WindowClassInstance(w x11.Window) (string, string) {
	if s := f.Windows[w]; s != nil {
		return s.Class, s.Instance
	}
	return "", ""
}

func (f *Fake) IsUrgent(w x11.Window) bool {
	if s := f.Windows[w]; s != nil {
		return s.Urgent
	}
	return false
}

func (f *Fake) ClearUrgent(w x11.Window) {
	if s := f.Windows[w]; s != nil {
		s.Urgent = false
	}
}

func (f *Fake) SizeHints(w x11.Window) x11.SizeHints {
	if s := f.Windows[w]; s != nil {
		return s.Hints
	}
	return x11.SizeHints{}
}

func (f *Fake) TransientFor(w x11.Window) (x11.Window, bool) {
	if s := f.Windows[w]; s != nil {
		return s.Transient, s.HasTransient
	}
	return 0, false
}

func (f *Fake) SupportsDeleteWindow(w x11.Window) bool {
	s := f.Windows[w]
	if s == nil {
		return false
	}
	for _, p := range s.Protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

func (f *Fake) SendDeleteWindow(w x11.Window, timestamp uint32) {
	f.DeleteSent = append(f.DeleteSent, w)
}

func (f *Fake) SetWMStateNormal(w x11.Window)    {}
func (f *Fake) SetWMStateWithdrawn(w x11.Window) {}

func (f *Fake) SendConfigureNotify(w x11.Window, r x11.Rect, bw uint32)    {}
func (f *Fake) SendConfigureNotifyRaw(w x11.Window, r x11.Rect, bw uint32) {}

func (f *Fake) PassThroughConfigure(w x11.Window, r x11.Rect, bw uint32, valueMask uint16, sibling x11.Window, stackMode uint8) {
}

func (f *Fake) SetSupportedAtoms(names []string)      {}
func (f *Fake) SetWMCheckWindow(check x11.Window) error { return nil }
func (f *Fake) StatusText() string                      { return f.StatusTextValue }
func (f *Fake) NetWMStateAtom() x11.Atom                { return f.NetStateAtom }
func (f *Fake) NetWMStateFullscreenAtom() x11.Atom      { return f.FullscreenAtom }
func (f *Fake) PropertyAtoms() x11.PropAtoms            { return f.AtomsCache }

func (f *Fake) KeysymForKeycode(keycode uint8) x11.Keysym { return f.Keymap[keycode] }

func (f *Fake) DrawBar(w x11.Window, r x11.Rect, cmds []x11.DrawCmd) {}
func (f *Fake) TextWidth(s string) int                               { return len(s) * 6 }
func (f *Fake) BarHeight() int                                       { return f.barHeight }

// Queue appends events to be returned in order by NextEvent/Poll.
func (f *Fake) Queue(evs ...x11.Event) { f.events = append(f.events, evs...) }

func (f *Fake) NextEvent() (x11.Event, error) {
	if len(f.events) == 0 {
		return x11.Event{}, fmt.Errorf("wmtest: no queued events")
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *Fake) Poll() (x11.Event, bool) {
	if len(f.events) == 0 {
		return x11.Event{}, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *Fake) Flush() {}
func (f *Fake) Sync()  {}
func (f *Fake) Close() {}
