package peer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mxproto/mxp-go/pkg/frame"
	"github.com/mxproto/mxp-go/pkg/signaling"
)

// DataChannelLabel is the name used for every MXP data channel.
const DataChannelLabel = "mxp"

// defaultHeartbeatInterval is how often a Connected peer emits a Ping.
const defaultHeartbeatInterval = 5 * time.Second

// Option configures a Peer.
type Option func(*Peer)

// WithHeartbeatInterval overrides the default 5s heartbeat cadence.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(p *Peer) { p.heartbeatInterval = d }
}

// WithChannelMode selects Reliable (ordered, unlimited retransmits) or
// BestEffort (unordered, zero retransmits) for the data channel this peer
// creates as Initiator. Has no effect for a Responder, whose channel mode
// is dictated by the remote offer.
func WithChannelMode(m ChannelMode) Option {
	return func(p *Peer) { p.mode = m }
}

// OnMessage registers the handler invoked for every non-heartbeat frame
// received on the data channel.
func OnMessage(fn func(*frame.Frame)) Option {
	return func(p *Peer) { p.onMessage = fn }
}

// OnError registers the handler invoked when a received chunk fails to decode.
func OnError(fn func(error)) Option {
	return func(p *Peer) { p.onError = fn }
}

// OnStateChange registers the handler invoked whenever the peer's lifecycle
// state changes.
func OnStateChange(fn func(State)) Option {
	return func(p *Peer) { p.onStateChange = fn }
}

// Peer represents exactly one remote party: it drives the signaling
// handshake, owns the data channel, and runs the heartbeat.
type Peer struct {
	mu sync.Mutex

	remoteID string
	role     Role
	state    State
	mode     ChannelMode

	conn Connection
	dc   DataChannel
	sig  signaling.Provider
	rng  RNG

	heartbeatInterval time.Duration
	heartbeatStop     chan struct{}

	connectedAt time.Time
	lastSeen    time.Time

	remoteDescSet     bool
	pendingCandidates []IceCandidate

	onMessage     func(*frame.Frame)
	onError       func(error)
	onStateChange func(State)
}

// New creates a Peer for remoteID. role determines which side drives the
// handshake. conn is the host peer-connection object this Peer will drive;
// sig is the signaling provider used to exchange offer/answer/candidates
// with remoteID; rng supplies frame identifiers for anything this peer
// originates directly (the heartbeat). rng may be nil, in which case
// heartbeat frames fall back to the package-default id source.
func New(remoteID string, role Role, conn Connection, sig signaling.Provider, rng RNG, opts ...Option) *Peer {
	p := &Peer{
		remoteID:          remoteID,
		role:              role,
		state:             StateNew,
		mode:              Reliable,
		conn:              conn,
		sig:               sig,
		rng:               rng,
		heartbeatInterval: defaultHeartbeatInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	conn.OnICECandidate(p.handleLocalICECandidate)
	conn.OnConnectionStateChange(p.handleConnectionStateChange)
	conn.OnDataChannel(p.bindDataChannel)
	return p
}

// RemoteID returns the id of the party this Peer connects to.
func (p *Peer) RemoteID() string {
	return p.remoteID
}

// State returns the peer's current lifecycle state.
func (p *Peer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Peer) setState(s State) {
	p.mu.Lock()
	changed := p.state != s
	p.state = s
	cb := p.onStateChange
	p.mu.Unlock()
	if changed && cb != nil {
		cb(s)
	}
}

// Start begins the handshake. For RoleInitiator it creates the data channel
// and offer and emits it via signaling. For RoleResponder it only arms the
// peer to receive an offer; call HandleSignal with the incoming Offer.
func (p *Peer) Start(ctx context.Context) error {
	p.setState(StateConnecting)
	if p.role != RoleInitiator {
		return nil
	}

	ordered, retransmits := channelParams(p.mode)
	dc, err := p.conn.CreateDataChannel(DataChannelLabel, ordered, retransmits)
	if err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: create data channel: %w", err)
	}
	p.bindDataChannel(dc)

	offer, err := p.conn.CreateOffer(ctx)
	if err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: create offer: %w", err)
	}
	if err := p.conn.SetLocalDescription(ctx, offer); err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: set local description: %w", err)
	}
	if err := p.sig.Send(ctx, signaling.Message{Kind: signaling.KindOffer, To: p.remoteID, Payload: offer}); err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: send offer: %w", err)
	}
	return nil
}

// newPing builds the Ping frame emitted by the heartbeat, drawing ids from
// the host-supplied RNG when one was provided.
func (p *Peer) newPing() *frame.Frame {
	if p.rng != nil {
		return frame.PingWithID(p.rng.Uint64(), p.rng.Uint64())
	}
	return frame.Ping()
}

// newPong builds the Pong reply to an incoming ping, drawing its message id
// from the host-supplied RNG when one was provided.
func (p *Peer) newPong(ping *frame.Frame) *frame.Frame {
	if p.rng != nil {
		return frame.PongWithID(p.rng.Uint64(), ping)
	}
	return frame.Pong(ping)
}

func channelParams(mode ChannelMode) (ordered bool, maxRetransmits int) {
	if mode == Reliable {
		return true, -1
	}
	return false, 0
}

// HandleSignal feeds one signaling message into the handshake. Offer is
// only meaningful for a Responder; Answer and IceCandidate apply to either
// role depending on who sent the original offer.
func (p *Peer) HandleSignal(ctx context.Context, msg signaling.Message) error {
	switch msg.Kind {
	case signaling.KindOffer:
		return p.handleOffer(ctx, msg.Payload)
	case signaling.KindAnswer:
		return p.handleAnswer(ctx, msg.Payload)
	case signaling.KindIceCandidate:
		return p.handleRemoteICECandidate(ctx, IceCandidate(msg.Payload))
	case signaling.KindHangup:
		return p.Close()
	default:
		return fmt.Errorf("peer: unknown signaling kind %q", msg.Kind)
	}
}

func (p *Peer) handleOffer(ctx context.Context, offer []byte) error {
	if err := p.conn.SetRemoteDescription(ctx, offer); err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: set remote description: %w", err)
	}
	p.drainBufferedCandidates(ctx)

	answer, err := p.conn.CreateAnswer(ctx)
	if err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: create answer: %w", err)
	}
	if err := p.conn.SetLocalDescription(ctx, answer); err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: set local description: %w", err)
	}
	return p.sig.Send(ctx, signaling.Message{Kind: signaling.KindAnswer, To: p.remoteID, Payload: answer})
}

func (p *Peer) handleAnswer(ctx context.Context, answer []byte) error {
	if err := p.conn.SetRemoteDescription(ctx, answer); err != nil {
		p.setState(StateFailed)
		return fmt.Errorf("peer: set remote description: %w", err)
	}
	p.drainBufferedCandidates(ctx)
	return nil
}

// handleRemoteICECandidate queues the candidate if the remote description is
// not yet set, or applies it immediately otherwise. This preserves the
// ordering invariant: candidates must never be applied ahead of the
// description that makes them meaningful.
func (p *Peer) handleRemoteICECandidate(ctx context.Context, c IceCandidate) error {
	p.mu.Lock()
	ready := p.remoteDescSet
	if !ready {
		p.pendingCandidates = append(p.pendingCandidates, c)
	}
	p.mu.Unlock()
	if !ready {
		return nil
	}
	return p.conn.AddICECandidate(ctx, c)
}

func (p *Peer) drainBufferedCandidates(ctx context.Context) {
	p.mu.Lock()
	p.remoteDescSet = true
	pending := p.pendingCandidates
	p.pendingCandidates = nil
	p.mu.Unlock()

	for _, c := range pending {
		if err := p.conn.AddICECandidate(ctx, c); err != nil {
			p.reportError(fmt.Errorf("peer: apply buffered ICE candidate: %w", err))
		}
	}
}

func (p *Peer) handleLocalICECandidate(c IceCandidate) {
	_ = p.sig.Send(context.Background(), signaling.Message{Kind: signaling.KindIceCandidate, To: p.remoteID, Payload: c})
}

func (p *Peer) handleConnectionStateChange(cs ConnectionState) {
	switch cs {
	case ConnStateFailed:
		p.setState(StateFailed)
	case ConnStateDisconnected:
		p.setState(StateDisconnected)
	case ConnStateClosed:
		p.setState(StateClosed)
	}
}

func (p *Peer) bindDataChannel(dc DataChannel) {
	p.mu.Lock()
	p.dc = dc
	p.mu.Unlock()

	dc.OnOpen(func() {
		p.mu.Lock()
		p.connectedAt = time.Now()
		p.lastSeen = p.connectedAt
		p.mu.Unlock()
		p.setState(StateConnected)
		p.startHeartbeat()
	})
	dc.OnClose(func() {
		p.stopHeartbeat()
	})
	dc.OnMessage(p.handleIncoming)
}

func (p *Peer) handleIncoming(data []byte) {
	f, err := frame.Decode(data)
	if err != nil {
		p.reportError(fmt.Errorf("peer: decode frame: %w", err))
		return
	}

	switch f.Kind {
	case frame.KindPing:
		pong := p.newPong(f)
		_ = p.writeFrame(pong)
		return
	case frame.KindPong:
		p.mu.Lock()
		p.lastSeen = time.Now()
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	cb := p.onMessage
	p.mu.Unlock()
	if cb != nil {
		cb(f)
	}
}

func (p *Peer) reportError(err error) {
	p.mu.Lock()
	cb := p.onError
	p.mu.Unlock()
	if cb != nil {
		cb(err)
	}
}

// Send encodes f and writes it to the data channel. It fails with
// ErrChannelClosed if the channel is not open.
func (p *Peer) Send(f *frame.Frame) error {
	return p.writeFrame(f)
}

func (p *Peer) writeFrame(f *frame.Frame) error {
	p.mu.Lock()
	dc := p.dc
	state := p.state
	p.mu.Unlock()
	if dc == nil || state != StateConnected {
		return ErrChannelClosed
	}
	return dc.Send(frame.Encode(f))
}

// Close cancels the heartbeat, closes the data channel and the underlying
// connection, and transitions to Closed. It is idempotent and safe to call
// from any state.
func (p *Peer) Close() error {
	p.mu.Lock()
	if p.state == StateClosed {
		p.mu.Unlock()
		return nil
	}
	dc := p.dc
	p.mu.Unlock()

	p.stopHeartbeat()
	if dc != nil {
		_ = dc.Close()
	}
	_ = p.conn.Close()
	p.setState(StateClosed)
	return nil
}
