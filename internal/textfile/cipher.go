package textfile

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Key schedule constants. Across lines the key advances additively, so any
// line can be decoded standalone from its index; within a line it advances by
// rotation only, which keeps the XOR transform self-inverse.
const (
	baseKey    = 0x7C89
	advanceKey = 0x2983
)

// lineKey returns the initial cipher key for the line at index.
func lineKey(index int) uint16 {
	return uint16(baseKey + index*advanceKey)
}

// nextKey advances the intra-line key state.
func nextKey(key uint16) uint16 {
	return bits.RotateLeft16(key, 3)
}

// cryptLine XORs data in place with the rolling key, one little-endian u16
// unit at a time. Applying it twice with the same key restores the input.
func cryptLine(data []byte, key uint16) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrMalformedCiphertext, len(data))
	}
	for i := 0; i < len(data); i += 2 {
		u := binary.LittleEndian.Uint16(data[i:])
		binary.LittleEndian.PutUint16(data[i:], u^key)
		key = nextKey(key)
	}
	return nil
}
