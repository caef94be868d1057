// Package transport provides a pure-Go, zero-CGo UDP transport for
// exchanging already-encoded MXP frames between two endpoints that do not
// go through a WebRTC-style peer connection (e.g. two long-lived agent
// processes that know each other's address directly).
//
// This is independent of pkg/peer and pkg/dispatch, which model the
// signaling-driven data-channel handshake; FrameTransport is a plainer
// alternative for environments where that handshake is unnecessary.
package transport
