package peer

import (
	"context"
	"sync"
)

// fakeConn is an in-memory Connection double. setRemote/createOffer/Answer
// never fail; tests drive candidate and state-change callbacks directly.
type fakeConn struct {
	mu sync.Mutex

	onICECandidate  func(IceCandidate)
	onStateChange   func(ConnectionState)
	onDataChannel   func(DataChannel)

	remoteDescSet bool
	closed        bool

	offerCalls  int
	answerCalls int
}

func newFakeConn() *fakeConn {
	return &fakeConn{}
}

func (c *fakeConn) CreateOffer(ctx context.Context) (SessionDescription, error) {
	c.offerCalls++
	return SessionDescription("offer-sdp"), nil
}

func (c *fakeConn) CreateAnswer(ctx context.Context) (SessionDescription, error) {
	c.answerCalls++
	return SessionDescription("answer-sdp"), nil
}

func (c *fakeConn) SetLocalDescription(ctx context.Context, sdp SessionDescription) error {
	return nil
}

func (c *fakeConn) SetRemoteDescription(ctx context.Context, sdp SessionDescription) error {
	c.mu.Lock()
	c.remoteDescSet = true
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) AddICECandidate(ctx context.Context, cand IceCandidate) error {
	return nil
}

func (c *fakeConn) CreateDataChannel(label string, ordered bool, maxRetransmits int) (DataChannel, error) {
	return newFakeDataChannel(), nil
}

func (c *fakeConn) OnDataChannel(fn func(DataChannel)) {
	c.onDataChannel = fn
}

func (c *fakeConn) OnICECandidate(fn func(IceCandidate)) {
	c.onICECandidate = fn
}

func (c *fakeConn) OnConnectionStateChange(fn func(ConnectionState)) {
	c.onStateChange = fn
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// fakeDataChannel is an in-memory DataChannel double with loopback-free
// send tracking; tests invoke onMessage themselves to simulate inbound data.
type fakeDataChannel struct {
	mu sync.Mutex

	onOpen    func()
	onClose   func()
	onMessage func([]byte)

	sent   [][]byte
	closed bool
}

func newFakeDataChannel() *fakeDataChannel {
	return &fakeDataChannel{}
}

func (d *fakeDataChannel) Send(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrChannelClosed
	}
	d.sent = append(d.sent, append([]byte(nil), data...))
	return nil
}

func (d *fakeDataChannel) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

func (d *fakeDataChannel) OnOpen(fn func())         { d.onOpen = fn }
func (d *fakeDataChannel) OnClose(fn func())        { d.onClose = fn }
func (d *fakeDataChannel) OnMessage(fn func([]byte)) { d.onMessage = fn }

func (d *fakeDataChannel) open() {
	if d.onOpen != nil {
		d.onOpen()
	}
}

func (d *fakeDataChannel) deliver(data []byte) {
	if d.onMessage != nil {
		d.onMessage(data)
	}
}

// fakeRNG is a deterministic RNG double: tests pass it to New so heartbeat
// Ping/Pong ids are predictable instead of drawn from mxpid.New().
type fakeRNG struct{ next uint64 }

func (r *fakeRNG) Uint64() uint64 {
	r.next++
	return r.next
}
