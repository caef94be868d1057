package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// Overlay transport wire constants.
const (
	OverlayMagic   uint16 = 0x4D58 // "MX"
	OverlayVersion byte   = 1
	overlayHdrSize        = 8 // 2B magic + 1B version + 1B flags + 4B length
	maxUDPPayload         = 65507
)

var _ FrameTransport = (*OverlayTransport)(nil)

var (
	ErrInvalidMagic    = errors.New("mxp overlay: invalid magic bytes")
	ErrVersionMismatch = errors.New("mxp overlay: unsupported version")
	ErrMessageTooLarge = errors.New("mxp overlay: message exceeds maximum UDP payload")
	ErrTransportClosed = errors.New("mxp overlay: transport is closed")
)

// OverlayTransport is a pure-Go FrameTransport that carries already-encoded
// MXP frames over UDP. It requires no CGo and no WebRTC host environment;
// it exists for agent processes that can reach each other directly.
//
// Wire layout: [2B magic][1B version][1B flags][4B length][encoded MXP frame...]
type OverlayTransport struct {
	conn   *net.UDPConn
	remote *net.UDPAddr // non-nil once a peer address is known
	mu     sync.Mutex
	closed bool
}

// DialOverlay connects to a remote MXP overlay endpoint.
func DialOverlay(addr string) (*OverlayTransport, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("mxp overlay: resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("mxp overlay: dial %s: %w", addr, err)
	}
	return &OverlayTransport{conn: conn, remote: raddr}, nil
}

// ListenOverlay creates a listening overlay transport bound to addr.
func ListenOverlay(addr string) (*OverlayTransport, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("mxp overlay: resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, fmt.Errorf("mxp overlay: listen %s: %w", addr, err)
	}
	return &OverlayTransport{conn: conn}, nil
}

// Send transmits one encoded MXP frame over the overlay.
func (t *OverlayTransport) Send(ctx context.Context, encodedFrame []byte) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrTransportClosed
	}
	t.mu.Unlock()

	totalLen := overlayHdrSize + len(encodedFrame)
	if totalLen > maxUDPPayload {
		return ErrMessageTooLarge
	}

	wire := make([]byte, totalLen)
	binary.BigEndian.PutUint16(wire[0:2], OverlayMagic)
	wire[2] = OverlayVersion
	wire[3] = 0 // flags, reserved
	binary.LittleEndian.PutUint32(wire[4:8], uint32(len(encodedFrame)))
	copy(wire[8:], encodedFrame)

	if deadline, ok := ctx.Deadline(); ok {
		if err := t.conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}

	if t.conn.RemoteAddr() != nil {
		_, err := t.conn.Write(wire)
		return err
	}
	// A listening transport has no connected peer; it replies to the
	// address learned from Recv.
	t.mu.Lock()
	remote := t.remote
	t.mu.Unlock()
	if remote == nil {
		return fmt.Errorf("mxp overlay: no peer address known yet")
	}
	_, err := t.conn.WriteToUDP(wire, remote)
	return err
}

// Recv blocks until one complete encoded MXP frame arrives.
func (t *OverlayTransport) Recv(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrTransportClosed
	}
	t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := make([]byte, maxUDPPayload)

	if deadline, ok := ctx.Deadline(); ok {
		if err := t.conn.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
	}

	// Monitor context cancellation: force the blocked read to return
	// promptly by expiring the read deadline.
	readDone := make(chan struct{})
	defer close(readDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = t.conn.SetReadDeadline(time.Now())
		case <-readDone:
		}
	}()

	n, remoteAddr, err := t.conn.ReadFromUDP(buf)
	if err != nil {
		return nil, err
	}
	if n < overlayHdrSize {
		return nil, fmt.Errorf("mxp overlay: datagram too short (%d bytes)", n)
	}

	t.mu.Lock()
	if t.remote == nil && remoteAddr != nil {
		t.remote = remoteAddr
	}
	t.mu.Unlock()

	magic := binary.BigEndian.Uint16(buf[0:2])
	if magic != OverlayMagic {
		return nil, ErrInvalidMagic
	}
	if buf[2] != OverlayVersion {
		return nil, ErrVersionMismatch
	}

	length := binary.LittleEndian.Uint32(buf[4:8])
	if overlayHdrSize+int(length) > n {
		return nil, fmt.Errorf("mxp overlay: declared length %d exceeds received %d", length, n-overlayHdrSize)
	}

	payload := make([]byte, length)
	copy(payload, buf[8:8+int(length)])
	return payload, nil
}

// Close shuts down the overlay transport.
func (t *OverlayTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}

// LocalAddr returns the local network address of the underlying connection.
func (t *OverlayTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}
