package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMonitor() *Monitor {
	return &Monitor{
		id:     1,
		tagset: [2]uint32{TagAll, TagAll},
	}
}

func TestMonitorViewIgnoresZeroMask(t *testing.T) {
	m := newTestMonitor()
	before := m.curTags()
	m.view(0)
	assert.Equal(t, before, m.curTags())
}

func TestMonitorViewFlipsBuffer(t *testing.T) {
	m := newTestMonitor()
	m.view(1)
	assert.Equal(t, uint32(1), m.curTags())
	m.view(2)
	assert.Equal(t, uint32(2), m.curTags())
}

func TestMonitorToggleViewNeverGoesToZero(t *testing.T) {
	m := newTestMonitor()
	m.tagset[m.seltags] = 1
	m.toggleview(1)
	assert.Equal(t, uint32(1), m.curTags(), "toggling off the last visible tag is a no-op")
}

func TestMonitorAttachDetachKeepsListsConsistent(t *testing.T) {
	m := newTestMonitor()
	m.attach(ClientID(1))
	m.attach(ClientID(2))
	assert.Equal(t, []ClientID{2, 1}, m.clients)
	assert.Equal(t, []ClientID{2, 1}, m.stack)

	m.detach(ClientID(2))
	m.detachStack(ClientID(2))
	assert.Equal(t, []ClientID{1}, m.clients)
	assert.Equal(t, []ClientID{1}, m.stack)
}

func TestRemoveIDPreservesOrder(t *testing.T) {
	in := []ClientID{1, 2, 3, 4}
	out := removeID(in, ClientID(3))
	assert.Equal(t, []ClientID{1, 2, 4}, out)
}
