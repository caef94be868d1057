package dispatch

import "sync/atomic"

// Stats is an immutable snapshot of dispatcher counters at the moment it
// was taken.
type Stats struct {
	MessagesSent     uint64
	MessagesReceived uint64
	BytesSent        uint64
	BytesReceived    uint64
	PeersConnected   uint64
}

// counters holds the live, mutable values Stats snapshots from.
type counters struct {
	messagesSent     atomic.Uint64
	messagesReceived atomic.Uint64
	bytesSent        atomic.Uint64
	bytesReceived    atomic.Uint64
	peersConnected   atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		MessagesSent:     c.messagesSent.Load(),
		MessagesReceived: c.messagesReceived.Load(),
		BytesSent:        c.bytesSent.Load(),
		BytesReceived:    c.bytesReceived.Load(),
		PeersConnected:   c.peersConnected.Load(),
	}
}

func (c *counters) recordSend(nbytes int) {
	c.messagesSent.Add(1)
	c.bytesSent.Add(uint64(nbytes))
}

func (c *counters) recordReceive(nbytes int) {
	c.messagesReceived.Add(1)
	c.bytesReceived.Add(uint64(nbytes))
}
