package x11

// EventKind is the sum-type discriminant for events the adapter
// hands to the engine. Per a design note, dispatch happens
// on this sum type via a switch in the engine's dispatcher rather
// than a scanned {type, function} table.
type EventKind int

const (
	EventButtonPress EventKind = iota
	EventButtonRelease
	EventMotionNotify
	EventClientMessage
	EventConfigureRequest
	EventConfigureNotify
	EventDestroyNotify
	EventEnterNotify
	EventExpose
	EventFocusIn
	EventKeyPress
	EventMappingNotify
	EventMapRequest
	EventPropertyNotify
	EventUnmapNotify
	EventRandrScreenChange
	EventUnknown
	EventError
)

// NotifyMode and NotifyDetail mirror the xproto enums the engine
// needs to interpret EnterNotify (the EnterNotify
// contract: ignore non-Normal modes and Inferior detail except for
// root crossings).
type NotifyMode uint8
type NotifyDetail uint8

const (
	NotifyNormal NotifyMode = iota
	NotifyGrab
	NotifyUngrab
	NotifyWhileGrabbed
)

const (
	NotifyAncestor NotifyDetail = iota
	NotifyVirtual
	NotifyInferior
	NotifyNonlinear
	NotifyNonlinearVirtual
	NotifyPointer
	NotifyPointerRoot
	NotifyDetailNone
)

// Event is the decoded, engine-facing representation of one X event.
// Only the fields relevant to the handler contracts
// are populated for a given Kind; the rest are zero.
type Event struct {
	Kind EventKind

	Window Window
	Root   Window
	Time   uint32

	// ButtonPress / KeyPress
	Button      uint8
	Keycode     uint8
	State       uint16
	RootX       int16
	RootY       int16
	ClickRegion ClickRegion

	// ConfigureRequest / ConfigureNotify
	X, Y, Width, Height int16
	BorderWidth         uint16
	ValueMask           uint16
	Sibling             Window

	// EnterNotify
	Mode   NotifyMode
	Detail NotifyDetail

	// Expose
	Count uint16

	// PropertyNotify
	Atom  Atom
	State8 uint8

	// ClientMessage
	MessageType Atom
	Data32      [5]uint32

	// MappingNotify
	Request uint8

	Err error // populated when Kind == EventError
}
