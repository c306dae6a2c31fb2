package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// NextEvent blocks for the next event and decodes it into the
// engine-facing sum type. This is the single suspension point in the
// whole program.
func (c *conn) NextEvent() (Event, error) {
	raw, err := c.xu.Conn().WaitForEvent()
	if err != nil {
		return Event{}, err
	}
	return c.decode(raw), nil
}

// Poll is the non-blocking counterpart used by drain-until loops
// (the "drain-until primitive") and by the mouse
// move/resize modal loop's motion coalescing.
func (c *conn) Poll() (Event, bool) {
	raw, err := c.xu.Conn().PollForEvent()
	if err != nil || raw == nil {
		return Event{}, false
	}
	return c.decode(raw), true
}

func (c *conn) decode(raw xgb.Event) Event {
	switch e := raw.(type) {
	case xproto.ButtonPressEvent:
		// Thaw a synchronous client-window grab and pass the click on.
		xproto.AllowEvents(c.xu.Conn(), xproto.AllowReplayPointer, xproto.TimeCurrentTime)
		return Event{
			Kind: EventButtonPress, Window: e.Event, Root: e.Root,
			Button: uint8(e.Detail), State: e.State, RootX: e.RootX, RootY: e.RootY,
			Time: uint32(e.Time),
		}
	case xproto.ButtonReleaseEvent:
		return Event{
			Kind: EventButtonRelease, Window: e.Event, Root: e.Root,
			Button: uint8(e.Detail), State: e.State, RootX: e.RootX, RootY: e.RootY,
			Time: uint32(e.Time),
		}
	case xproto.MotionNotifyEvent:
		return Event{
			Kind: EventMotionNotify, Window: e.Event, Root: e.Root,
			State: e.State, RootX: e.RootX, RootY: e.RootY, Time: uint32(e.Time),
		}
	case xproto.ClientMessageEvent:
		ev := Event{Kind: EventClientMessage, Window: e.Window, MessageType: e.Type}
		copy(ev.Data32[:], e.Data.Data32)
		return ev
	case xproto.ConfigureRequestEvent:
		return Event{
			Kind: EventConfigureRequest, Window: e.Window, Sibling: e.Sibling,
			X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
			BorderWidth: e.BorderWidth, ValueMask: e.ValueMask,
		}
	case xproto.ConfigureNotifyEvent:
		return Event{
			Kind: EventConfigureNotify, Window: e.Window,
			X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
			BorderWidth: e.BorderWidth,
		}
	case xproto.DestroyNotifyEvent:
		return Event{Kind: EventDestroyNotify, Window: e.Window}
	case xproto.EnterNotifyEvent:
		return Event{
			Kind: EventEnterNotify, Window: e.Event, Root: e.Root,
			Mode: NotifyMode(e.Mode), Detail: NotifyDetail(e.Detail),
			RootX: e.RootX, RootY: e.RootY, Time: uint32(e.Time),
		}
	case xproto.ExposeEvent:
		return Event{Kind: EventExpose, Window: e.Window, Count: e.Count}
	case xproto.FocusInEvent:
		return Event{Kind: EventFocusIn, Window: e.Event}
	case xproto.KeyPressEvent:
		return Event{
			Kind: EventKeyPress, Window: e.Event, Keycode: uint8(e.Detail),
			State: e.State, Time: uint32(e.Time),
		}
	case xproto.MappingNotifyEvent:
		return Event{Kind: EventMappingNotify, Request: e.Request}
	case xproto.MapRequestEvent:
		return Event{Kind: EventMapRequest, Window: e.Window}
	case xproto.PropertyNotifyEvent:
		return Event{Kind: EventPropertyNotify, Window: e.Window, Atom: e.Atom, Time: uint32(e.Time)}
	case xproto.UnmapNotifyEvent:
		return Event{Kind: EventUnmapNotify, Window: e.Window}
	case randr.ScreenChangeNotifyEvent:
		return Event{Kind: EventRandrScreenChange}
	case xgb.Error:
		return Event{Kind: EventError, Err: fmt.Errorf("x11 protocol error: %v", e)}
	default:
		return Event{Kind: EventUnknown}
	}
}
