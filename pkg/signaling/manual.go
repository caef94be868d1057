package signaling

import "context"

// ManualProvider is a Provider for out-of-band signaling: the application
// copies offer/answer/candidate blobs between peers itself (e.g. pasting
// them into a chat window) and calls Receive to inject what it copied.
// Send hands the outgoing message to a caller-supplied sink rather than
// transmitting it anywhere.
type ManualProvider struct {
	localID string
	sink    func(Message)
	handler Handler
}

// NewManualProvider creates a manual-exchange provider. sink is invoked for
// every message this provider sends; it is the application's job to get
// that message to the remote peer and feed it back in via Receive there.
func NewManualProvider(localID string, sink func(Message)) *ManualProvider {
	return &ManualProvider{localID: localID, sink: sink}
}

// Send hands msg to the sink synchronously.
func (p *ManualProvider) Send(_ context.Context, msg Message) error {
	msg.From = p.localID
	if p.sink != nil {
		p.sink(msg)
	}
	return nil
}

// OnMessage registers the handler invoked by Receive.
func (p *ManualProvider) OnMessage(h Handler) {
	p.handler = h
}

// Receive injects a signaling message obtained out of band.
func (p *ManualProvider) Receive(msg Message) {
	if p.handler != nil {
		p.handler(msg)
	}
}

// LocalID returns this provider's local id.
func (p *ManualProvider) LocalID() string {
	return p.localID
}
