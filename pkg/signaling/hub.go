package signaling

import (
	"context"
	"sync"
)

// Hub is a process-local registry mapping peer id to handler. It is the
// in-memory reference signaling backend, useful for tests and single-process
// demos where every peer lives in the same Go runtime.
type Hub struct {
	mu       sync.Mutex
	handlers map[string]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[string]Handler)}
}

// Join returns a Provider bound to localID. The id receives messages once
// OnMessage has registered its handler with the hub.
func (h *Hub) Join(localID string) *HubProvider {
	return &HubProvider{hub: h, localID: localID}
}

func (h *Hub) setHandler(id string, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[id] = handler
}

func (h *Hub) deliver(msg Message) {
	h.mu.Lock()
	handler := h.handlers[msg.To]
	h.mu.Unlock()
	if handler == nil {
		return
	}
	// Delivery is scheduled, not inline: the sender must not block on, or be
	// reentered by, the recipient's handler.
	go handler(msg)
}

// HubProvider is a Provider backed by a Hub.
type HubProvider struct {
	hub     *Hub
	localID string
}

// Send delivers msg asynchronously to the peer named by msg.To.
func (p *HubProvider) Send(_ context.Context, msg Message) error {
	msg.From = p.localID
	p.hub.deliver(msg)
	return nil
}

// OnMessage registers h as the handler for messages addressed to this peer.
func (p *HubProvider) OnMessage(h Handler) {
	p.hub.setHandler(p.localID, h)
}

// LocalID returns the peer id this provider was joined under.
func (p *HubProvider) LocalID() string {
	return p.localID
}
