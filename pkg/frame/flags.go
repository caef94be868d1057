package frame

// Flags is a bitset carried in the frame header. Individual bits are
// defined below; undefined bits are reserved and must be zero on encode.
type Flags byte

// Flag bits.
const (
	FlagEncrypted    Flags = 0x01
	FlagCompressed   Flags = 0x02
	FlagRequiresAck  Flags = 0x04
	FlagRetransmit   Flags = 0x08
	FlagHighPriority Flags = 0x10
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// With returns a copy of f with the given bits set.
func (f Flags) With(bits Flags) Flags {
	return f | bits
}
