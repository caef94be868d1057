// Package dispatch implements the multi-peer dispatcher: it owns the
// peer_id → Peer map, routes incoming signaling by kind, and exposes
// connect/disconnect/send/broadcast plus a statistics snapshot.
package dispatch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mxproto/mxp-go/pkg/frame"
	"github.com/mxproto/mxp-go/pkg/peer"
	"github.com/mxproto/mxp-go/pkg/signaling"
)

// maxConcurrentBroadcastSends bounds how many peers Broadcast writes to
// simultaneously, preventing goroutine growth unbounded by peer count.
const maxConcurrentBroadcastSends = 32

// defaultConnectionTimeout bounds how long Connect waits for a peer to
// reach Connected.
const defaultConnectionTimeout = 30 * time.Second

// ConnectionFactory produces a fresh host peer-connection object for one
// new Peer. The dispatcher calls it once per Connect/incoming-offer.
type ConnectionFactory func() (peer.Connection, error)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConnectionTimeout overrides the default 30s connect deadline.
func WithConnectionTimeout(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.connectionTimeout = d }
}

// WithPeerOptions applies extra peer.Option values to every Peer the
// dispatcher creates (e.g. WithHeartbeatInterval, WithChannelMode).
func WithPeerOptions(opts ...peer.Option) Option {
	return func(disp *Dispatcher) { disp.peerOpts = append(disp.peerOpts, opts...) }
}

// OnMessage registers the handler invoked for every non-heartbeat frame
// received from any peer.
func OnMessage(fn func(peerID string, f *frame.Frame)) Option {
	return func(disp *Dispatcher) { disp.onMessage = fn }
}

// Dispatcher maps peer_id to a peer.Peer and is the single owner of that
// map. The map is guarded by mu, since it is mutated both by the caller's
// Connect/Disconnect and by signaling handlers that the provider may run
// on other goroutines.
type Dispatcher struct {
	mu sync.Mutex

	localID string
	sig     signaling.Provider
	newConn ConnectionFactory
	rng     peer.RNG

	connectionTimeout time.Duration
	peerOpts          []peer.Option
	onMessage         func(peerID string, f *frame.Frame)

	peers    map[string]*peer.Peer
	counters counters
}

// New creates a Dispatcher identified as localID. sig is the signaling
// provider shared across every peer; newConn mints a fresh host
// peer-connection object for each one.
func New(localID string, sig signaling.Provider, newConn ConnectionFactory, rng peer.RNG, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		localID:           localID,
		sig:               sig,
		newConn:           newConn,
		rng:               rng,
		connectionTimeout: defaultConnectionTimeout,
		peers:             make(map[string]*peer.Peer),
	}
	for _, opt := range opts {
		opt(d)
	}
	sig.OnMessage(d.handleSignal)
	return d
}

// Connect establishes a connection to peerID as Initiator, waiting for it
// to reach Connected. If an entry already exists and is Connected it
// returns immediately; if it exists in any other state it is closed and
// replaced.
func (d *Dispatcher) Connect(ctx context.Context, peerID string) (*peer.Peer, error) {
	d.mu.Lock()
	if existing, ok := d.peers[peerID]; ok {
		if existing.State() == peer.StateConnected {
			d.mu.Unlock()
			return existing, nil
		}
		delete(d.peers, peerID)
		d.mu.Unlock()
		_ = existing.Close()
	} else {
		d.mu.Unlock()
	}

	p, settled, err := d.newPeer(peerID, peer.RoleInitiator)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.peers[peerID] = p
	d.mu.Unlock()

	if err := p.Start(ctx); err != nil {
		d.removePeer(peerID)
		return nil, err
	}

	timeout := d.connectionTimeout
	select {
	case st := <-settled:
		if st == peer.StateFailed {
			d.removePeer(peerID)
			return nil, ErrHandshakeFailed
		}
		d.counters.peersConnected.Add(1)
		return p, nil
	case <-time.After(timeout):
		d.removePeer(peerID)
		return nil, ErrTimeout
	case <-ctx.Done():
		d.removePeer(peerID)
		return nil, ctx.Err()
	}
}

// newPeer builds a Peer wired to notify settled exactly once, when it first
// reaches Connected or Failed.
func (d *Dispatcher) newPeer(peerID string, role peer.Role) (*peer.Peer, chan peer.State, error) {
	conn, err := d.newConn()
	if err != nil {
		return nil, nil, fmt.Errorf("dispatch: create connection: %w", err)
	}

	settled := make(chan peer.State, 1)
	var once sync.Once

	opts := append([]peer.Option{
		peer.OnMessage(func(f *frame.Frame) {
			d.counters.recordReceive(len(f.Payload))
			d.mu.Lock()
			cb := d.onMessage
			d.mu.Unlock()
			if cb != nil {
				cb(peerID, f)
			}
		}),
		peer.OnError(func(err error) {
			log.Printf("dispatch: peer %s: %v", peerID, err)
		}),
		peer.OnStateChange(func(st peer.State) {
			if st == peer.StateConnected || st == peer.StateFailed {
				once.Do(func() { settled <- st })
			}
		}),
	}, d.peerOpts...)

	p := peer.New(peerID, role, conn, d.sig, d.rng, opts...)
	return p, settled, nil
}

func (d *Dispatcher) removePeer(peerID string) {
	d.mu.Lock()
	p, ok := d.peers[peerID]
	if ok {
		delete(d.peers, peerID)
	}
	d.mu.Unlock()
	if ok {
		_ = p.Close()
	}
}

// Disconnect closes and removes peerID's entry, if any.
func (d *Dispatcher) Disconnect(peerID string) {
	d.removePeer(peerID)
}

// Send delegates frame f to peerID's connected data channel.
func (d *Dispatcher) Send(peerID string, f *frame.Frame) error {
	d.mu.Lock()
	p, ok := d.peers[peerID]
	d.mu.Unlock()
	if !ok {
		return ErrUnknownPeer
	}
	if p.State() != peer.StateConnected {
		return ErrNotConnected
	}
	if err := p.Send(f); err != nil {
		return err
	}
	d.counters.recordSend(len(f.Payload))
	return nil
}

// Broadcast sends f to every Connected peer concurrently. f is not encoded
// once up front: each peer's Send encodes it separately. Per-peer send
// failures are logged, not returned; Broadcast itself never fails.
func (d *Dispatcher) Broadcast(f *frame.Frame) {
	d.mu.Lock()
	targets := make([]*peer.Peer, 0, len(d.peers))
	for _, p := range d.peers {
		if p.State() == peer.StateConnected {
			targets = append(targets, p)
		}
	}
	d.mu.Unlock()

	var g errgroup.Group
	g.SetLimit(maxConcurrentBroadcastSends)
	for _, p := range targets {
		p := p
		g.Go(func() error {
			if err := p.Send(f); err != nil {
				log.Printf("dispatch: broadcast to %s: %v", p.RemoteID(), err)
				return nil
			}
			d.counters.recordSend(len(f.Payload))
			return nil
		})
	}
	_ = g.Wait()
}

// Stats returns an immutable snapshot of the dispatcher's counters.
func (d *Dispatcher) Stats() Stats {
	return d.counters.snapshot()
}

// handleSignal routes one incoming signaling message. Messages not
// addressed to this dispatcher's local id are dropped.
func (d *Dispatcher) handleSignal(msg signaling.Message) {
	if msg.To != d.localID {
		return
	}

	switch msg.Kind {
	case signaling.KindOffer:
		d.handleIncomingOffer(msg)
	case signaling.KindAnswer, signaling.KindIceCandidate:
		d.feedExistingPeer(msg)
	case signaling.KindHangup:
		d.Disconnect(msg.From)
	}
}

func (d *Dispatcher) handleIncomingOffer(msg signaling.Message) {
	d.mu.Lock()
	_, exists := d.peers[msg.From]
	d.mu.Unlock()

	var p *peer.Peer
	if exists {
		d.mu.Lock()
		p = d.peers[msg.From]
		d.mu.Unlock()
	} else {
		created, _, err := d.newPeer(msg.From, peer.RoleResponder)
		if err != nil {
			log.Printf("dispatch: create responder peer for %s: %v", msg.From, err)
			return
		}
		d.mu.Lock()
		d.peers[msg.From] = created
		d.mu.Unlock()
		p = created
	}

	if err := p.HandleSignal(context.Background(), msg); err != nil {
		log.Printf("dispatch: handle offer from %s: %v", msg.From, err)
	}
}

func (d *Dispatcher) feedExistingPeer(msg signaling.Message) {
	d.mu.Lock()
	p, ok := d.peers[msg.From]
	d.mu.Unlock()
	if !ok {
		log.Printf("dispatch: signaling %s from unknown peer %s", msg.Kind, msg.From)
		return
	}
	if err := p.HandleSignal(context.Background(), msg); err != nil {
		log.Printf("dispatch: handle %s from %s: %v", msg.Kind, msg.From, err)
	}
}
