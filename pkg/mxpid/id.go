// Package mxpid provides the identifier and checksum primitives shared by
// every MXP frame: 64-bit random IDs and the payload integrity hash.
package mxpid

import (
	"crypto/rand"
	"encoding/binary"
)

// New returns a fresh 64-bit identifier drawn from a cryptographically
// strong random source. Collisions within a process are tolerated but are
// astronomically unlikely; callers must not rely on monotonicity or any
// other structure.
func New() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is broken,
		// which leaves the process in no state to continue safely.
		panic("mxpid: system randomness unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
