package wm

// ClientID and MonitorID are arena indices, per a design
// note on cyclic references: a client never holds a pointer to its
// monitor, only this id, and a monitor never holds pointers to its
// clients, only these ids in its clients/stack slices. Zero is never
// a valid id; the engine's arenas start allocation at 1 so the zero
// value can mean "none" (e.g. Monitor.sel == 0).
type ClientID uint32
type MonitorID uint32

const noClient = ClientID(0)
const noMonitor = MonitorID(0)
