package signaling

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// SocketProvider relays signaling messages through a WebSocket server that
// simply echoes each message to the peer named in its To field. If a read
// fails it reconnects after a delay of 1s * attempt, giving up after
// maxAttempts consecutive failures (DefaultMaxReconnectAttempts by default).
type SocketProvider struct {
	url     string
	localID string

	maxAttempts int

	mu      sync.Mutex
	conn    *websocket.Conn
	handler Handler
	closed  bool
}

// DefaultMaxReconnectAttempts bounds SocketProvider's reconnect loop.
const DefaultMaxReconnectAttempts = 5

// NewSocketProvider configures a provider that identifies this peer as
// localID to the relay at url. It does not dial: Connect dials the relay and
// starts the read loop, and Send fails until Connect has succeeded.
func NewSocketProvider(localID, url string) *SocketProvider {
	return &SocketProvider{
		url:         url,
		localID:     localID,
		maxAttempts: DefaultMaxReconnectAttempts,
	}
}

// dialURL returns the relay URL with this provider's localID attached as
// the "peer" query parameter, so the relay can associate the connection
// with it for routing.
func (p *SocketProvider) dialURL() string {
	u, err := url.Parse(p.url)
	if err != nil {
		return p.url
	}
	q := u.Query()
	q.Set("peer", p.localID)
	u.RawQuery = q.Encode()
	return u.String()
}

// Connect dials the relay and starts the background read loop. It is safe
// to call Connect more than once only after Close.
func (p *SocketProvider) Connect(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, p.dialURL(), nil)
	if err != nil {
		return fmt.Errorf("signaling: dial relay: %w", err)
	}
	p.mu.Lock()
	p.conn = conn
	p.closed = false
	p.mu.Unlock()

	go p.readLoop(ctx)
	return nil
}

func (p *SocketProvider) readLoop(ctx context.Context) {
	attempt := 0
	for {
		p.mu.Lock()
		conn := p.conn
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return
		}

		var msg Message
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			if p.isClosed() {
				return
			}
			attempt++
			if attempt > p.maxAttempts {
				return
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			if reconnErr := p.reconnect(ctx); reconnErr != nil {
				continue
			}
			continue
		}
		attempt = 0

		p.mu.Lock()
		handler := p.handler
		p.mu.Unlock()
		if handler != nil {
			go handler(msg)
		}
	}
}

func (p *SocketProvider) reconnect(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, p.dialURL(), nil)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()
	return nil
}

func (p *SocketProvider) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Send writes msg to the relay as a JSON text frame.
func (p *SocketProvider) Send(ctx context.Context, msg Message) error {
	msg.From = p.localID
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("signaling: not connected")
	}
	return wsjson.Write(ctx, conn, msg)
}

// OnMessage registers the handler invoked for each relayed message.
func (p *SocketProvider) OnMessage(h Handler) {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
}

// LocalID returns the id this provider identifies itself as to the relay.
func (p *SocketProvider) LocalID() string {
	return p.localID
}

// Close closes the underlying connection and stops the read loop.
func (p *SocketProvider) Close() error {
	p.mu.Lock()
	p.closed = true
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "closing")
}
