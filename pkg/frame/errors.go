package frame

import "errors"

// Decode errors. These are surfaced from Decode/DecodeHeader; callers
// decide whether to drop the frame, log it, or tear down the connection.
var (
	// ErrTooShort is returned when fewer than HeaderSize bytes are available.
	ErrTooShort = errors.New("mxp/frame: buffer shorter than header size")

	// ErrUnsupportedVersion is returned when the version byte is not 1.
	ErrUnsupportedVersion = errors.New("mxp/frame: unsupported protocol version")

	// ErrPayloadLengthOverflow is returned when the declared payload length
	// would overrun the supplied buffer or exceeds MaxPayloadSize.
	ErrPayloadLengthOverflow = errors.New("mxp/frame: payload length overflow")

	// ErrChecksumMismatch is returned when the recomputed payload checksum
	// does not match the header field.
	ErrChecksumMismatch = errors.New("mxp/frame: payload checksum mismatch")
)
