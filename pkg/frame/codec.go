package frame

import "github.com/mxproto/mxp-go/pkg/mxpid"

// Encode serialises f as a contiguous byte sequence: the 64-byte header
// followed by the payload. The checksum is computed over the payload only.
func Encode(f *Frame) []byte {
	header := EncodeHeader(f)
	out := make([]byte, HeaderSize+len(f.Payload))
	copy(out, header[:])
	copy(out[HeaderSize:], f.Payload)
	return out
}

// EncodeHeader builds the 64-byte header for f without appending the
// payload. Reserved fields are always zero.
func EncodeHeader(f *Frame) [HeaderSize]byte {
	return encodeHeader(Header{
		Version:       Version,
		Kind:          f.Kind,
		Flags:         f.Flags,
		Priority:      f.Priority,
		MessageID:     f.MessageID,
		TraceID:       f.TraceID,
		CorrelationID: f.CorrelationID,
		PayloadLength: uint32(len(f.Payload)),
		Checksum:      mxpid.Checksum(f.Payload),
	})
}

// Decode parses a complete wire frame from b. The decoded Frame's MessageID
// is taken verbatim from the wire, never regenerated.
func Decode(b []byte) (*Frame, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}

	end := HeaderSize + int(h.PayloadLength)
	if end > len(b) {
		return nil, ErrPayloadLengthOverflow
	}
	payload := b[HeaderSize:end]

	if mxpid.Checksum(payload) != h.Checksum {
		return nil, ErrChecksumMismatch
	}

	payloadCopy := make([]byte, len(payload))
	copy(payloadCopy, payload)

	return &Frame{
		Version:       h.Version,
		Kind:          h.Kind,
		Flags:         h.Flags,
		Priority:      h.Priority,
		MessageID:     h.MessageID,
		TraceID:       h.TraceID,
		CorrelationID: h.CorrelationID,
		Payload:       payloadCopy,
	}, nil
}

// DecodeHeader parses just the 64-byte header from b, validating version
// and declared payload length but not the checksum (the payload is not yet
// available to verify against).
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrTooShort
	}
	h := decodeHeader(b)
	if h.Version != Version {
		return Header{}, ErrUnsupportedVersion
	}
	if h.PayloadLength > MaxPayloadSize {
		return Header{}, ErrPayloadLengthOverflow
	}
	return h, nil
}
