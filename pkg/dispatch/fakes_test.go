package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/mxproto/mxp-go/pkg/peer"
)

var errSendFailed = errors.New("fakeDataChannel: send failed")

// fakeConn is a Connection double that opens its data channel immediately
// (simulating a handshake that always succeeds) unless autoOpen is false.
type fakeConn struct {
	mu       sync.Mutex
	autoOpen bool
	dc       *fakeDataChannel
	onDC     func(peer.DataChannel)
	failSend bool
}

func newFakeConn(autoOpen bool) *fakeConn {
	return &fakeConn{autoOpen: autoOpen}
}

func (c *fakeConn) CreateOffer(ctx context.Context) (peer.SessionDescription, error) {
	return peer.SessionDescription("offer"), nil
}
func (c *fakeConn) CreateAnswer(ctx context.Context) (peer.SessionDescription, error) {
	return peer.SessionDescription("answer"), nil
}
func (c *fakeConn) SetLocalDescription(ctx context.Context, sdp peer.SessionDescription) error {
	return nil
}
func (c *fakeConn) SetRemoteDescription(ctx context.Context, sdp peer.SessionDescription) error {
	return nil
}
func (c *fakeConn) AddICECandidate(ctx context.Context, cand peer.IceCandidate) error { return nil }

func (c *fakeConn) CreateDataChannel(label string, ordered bool, maxRetransmits int) (peer.DataChannel, error) {
	dc := &fakeDataChannel{failSend: c.failSend}
	c.mu.Lock()
	c.dc = dc
	c.mu.Unlock()
	if c.autoOpen {
		go dc.open()
	}
	return dc, nil
}

func (c *fakeConn) OnDataChannel(fn func(peer.DataChannel)) { c.onDC = fn }
func (c *fakeConn) OnICECandidate(func(peer.IceCandidate))  {}
func (c *fakeConn) OnConnectionStateChange(func(peer.ConnectionState)) {}
func (c *fakeConn) Close() error                            { return nil }

type fakeDataChannel struct {
	mu        sync.Mutex
	onOpen    func()
	onClose   func()
	onMessage func([]byte)
	failSend  bool
	sent      [][]byte
	closed    bool
}

func (d *fakeDataChannel) Send(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failSend {
		return errSendFailed
	}
	d.sent = append(d.sent, data)
	return nil
}
func (d *fakeDataChannel) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}
func (d *fakeDataChannel) OnOpen(fn func())          { d.onOpen = fn }
func (d *fakeDataChannel) OnClose(fn func())         { d.onClose = fn }
func (d *fakeDataChannel) OnMessage(fn func([]byte)) { d.onMessage = fn }

func (d *fakeDataChannel) open() {
	if d.onOpen != nil {
		d.onOpen()
	}
}
