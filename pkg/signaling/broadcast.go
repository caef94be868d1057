package signaling

import (
	"context"
	"sync"
)

// BroadcastChannel models a same-origin broadcast medium (analogous to a
// browser BroadcastChannel): every message is fanned out to every member,
// and a member only acts on it if it is addressed to that member's local id
// or to the wildcard recipient "*".
type BroadcastChannel struct {
	mu      sync.Mutex
	members map[string]Handler
}

// Wildcard addresses every member of a broadcast channel.
const Wildcard = "*"

// NewBroadcastChannel creates an empty broadcast medium.
func NewBroadcastChannel() *BroadcastChannel {
	return &BroadcastChannel{members: make(map[string]Handler)}
}

// Join returns the Provider for member localID. The member receives
// messages once OnMessage has registered its handler with the channel.
func (c *BroadcastChannel) Join(localID string) *BroadcastProvider {
	return &BroadcastProvider{channel: c, localID: localID}
}

func (c *BroadcastChannel) setHandler(id string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members[id] = h
}

func (c *BroadcastChannel) fanOut(msg Message) {
	c.mu.Lock()
	handlers := make(map[string]Handler, len(c.members))
	for id, h := range c.members {
		handlers[id] = h
	}
	c.mu.Unlock()

	for id, h := range handlers {
		if h == nil || id == msg.From {
			continue
		}
		if msg.To == Wildcard || msg.To == id {
			go h(msg)
		}
	}
}

// BroadcastProvider is a Provider backed by a BroadcastChannel.
type BroadcastProvider struct {
	channel *BroadcastChannel
	localID string
}

// Send fans msg out to every channel member; only members matching msg.To
// (or the wildcard) act on it.
func (p *BroadcastProvider) Send(_ context.Context, msg Message) error {
	msg.From = p.localID
	p.channel.fanOut(msg)
	return nil
}

// OnMessage registers h as this member's handler.
func (p *BroadcastProvider) OnMessage(h Handler) {
	p.channel.setHandler(p.localID, h)
}

// LocalID returns this member's id.
func (p *BroadcastProvider) LocalID() string {
	return p.localID
}
