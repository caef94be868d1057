package frame

import "encoding/binary"

// Wire layout constants. All multi-byte integers are little-endian.
const (
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 64

	// Version is the only protocol version this codec understands.
	Version byte = 1

	// MaxPayloadSize is the largest payload a frame may carry (16 MiB).
	MaxPayloadSize = 16 << 20
)

// header field byte offsets, per the wire layout table.
const (
	offVersion       = 0
	offKind          = 1
	offFlags         = 2
	offPriority      = 3
	offReserved1     = 4 // 4 bytes
	offMessageID     = 8
	offTraceID       = 16
	offCorrelationID = 24
	offPayloadLen    = 32
	offReserved2     = 36 // 12 bytes
	offReserved3     = 48 // 8 bytes
	offChecksum      = 56
)

// Header is the decoded form of the fixed 64-byte frame header.
type Header struct {
	Version       byte
	Kind          Kind
	Flags         Flags
	Priority      byte
	MessageID     uint64
	TraceID       uint64
	CorrelationID uint64
	PayloadLength uint32
	Checksum      uint64
}

// encodeHeader writes h into a 64-byte array. Reserved fields are always
// zeroed on encode, regardless of what the Header value carries.
func encodeHeader(h Header) [HeaderSize]byte {
	var b [HeaderSize]byte
	b[offVersion] = h.Version
	b[offKind] = byte(h.Kind)
	b[offFlags] = byte(h.Flags)
	b[offPriority] = h.Priority
	binary.LittleEndian.PutUint64(b[offMessageID:], h.MessageID)
	binary.LittleEndian.PutUint64(b[offTraceID:], h.TraceID)
	binary.LittleEndian.PutUint64(b[offCorrelationID:], h.CorrelationID)
	binary.LittleEndian.PutUint32(b[offPayloadLen:], h.PayloadLength)
	binary.LittleEndian.PutUint64(b[offChecksum:], h.Checksum)
	return b
}

// decodeHeader parses the first HeaderSize bytes of b. The caller must
// already have verified len(b) >= HeaderSize.
func decodeHeader(b []byte) Header {
	return Header{
		Version:       b[offVersion],
		Kind:          Kind(b[offKind]),
		Flags:         Flags(b[offFlags]),
		Priority:      b[offPriority],
		MessageID:     binary.LittleEndian.Uint64(b[offMessageID:]),
		TraceID:       binary.LittleEndian.Uint64(b[offTraceID:]),
		CorrelationID: binary.LittleEndian.Uint64(b[offCorrelationID:]),
		PayloadLength: binary.LittleEndian.Uint32(b[offPayloadLen:]),
		Checksum:      binary.LittleEndian.Uint64(b[offChecksum:]),
	}
}
