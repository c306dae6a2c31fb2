package wm

import "github.com/goxwm/goxwm/internal/x11"

// Monitor is one physical output. mx/my/mw/mh are the
// full output geometry from RandR; wx/wy/ww/wh are the work area after
// subtracting the bar, the rect layouts actually arrange into.
type Monitor struct {
	id  MonitorID
	num int

	mx, my, mw, mh int
	wx, wy, ww, wh int

	tagset  [2]uint32
	seltags int

	lt      [2]*Layout
	sellt   int
	ltsymbol string
	mfact   float64

	showBar bool
	topBar  bool
	barWin  x11.Window

	clients []ClientID // attach order
	stack   []ClientID // focus/stacking order, most recent first
	sel     ClientID
}

// curTags returns the bitmask of currently visible tags.
func (m *Monitor) curTags() uint32 { return m.tagset[m.seltags] }

// view replaces the monitor's visible tagset. ~0 (TagAll) is treated
// as "show everything"; view(0) is a no-op so a
// stray key binding with an empty mask can never blank the screen.
func (m *Monitor) view(mask uint32) {
	if mask == 0 || mask == m.curTags() {
		return
	}
	m.seltags ^= 1
	m.tagset[m.seltags] = mask
}

// toggleview XORs mask into the visible set, refusing to let the
// result go to zero for the same reason view(0) is a no-op.
func (m *Monitor) toggleview(mask uint32) {
	newTags := m.curTags() ^ mask
	if newTags == 0 {
		return
	}
	m.tagset[m.seltags] = newTags
}

// attach inserts id at the head of both the client and stack lists,
// mirroring dwm's attach+attachstack pair: new clients become the
// master and the most-recently-focused window in one step.
func (m *Monitor) attach(id ClientID) {
	m.clients = append([]ClientID{id}, m.clients...)
	m.attachStack(id)
}

func (m *Monitor) attachStack(id ClientID) {
	m.stack = append([]ClientID{id}, m.stack...)
}

// detach removes id from the client list only; callers that also want
// it out of the stacking order call detachStack separately, since
// unmanage needs both but focus changes only touch one.
func (m *Monitor) detach(id ClientID) {
	m.clients = removeID(m.clients, id)
}

func (m *Monitor) detachStack(id ClientID) {
	m.stack = removeID(m.stack, id)
	if m.sel == id {
		for _, cid := range m.stack {
			m.sel = cid
			return
		}
		m.sel = noClient
	}
}

func removeID(ids []ClientID, target ClientID) []ClientID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
