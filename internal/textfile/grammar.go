package textfile

import (
	"encoding/binary"
	"fmt"
)

// Code-unit markers of the string grammar.
const (
	codeTerminator uint16 = 0x0000 // end of line
	codeVariable   uint16 = 0x0010 // variable token marker
	codeReturn     uint16 = 0xBE00 // carriage return
	codeClear      uint16 = 0xBE01 // clear screen
	codeWait       uint16 = 0xBE02 // wait
	codeNull       uint16 = 0xBDFF // line cross-reference
	codeRuby       uint16 = 0xFF01 // ruby annotation
)

// remapToRune maps private-use code units to Unicode equivalents. Applied
// symmetrically, and only when remapping is enabled.
var remapToRune = map[uint16]rune{
	0xE07F: 0x202F, // narrow no-break space
	0xE08D: 0x2026, // horizontal ellipsis
	0xE08E: 0x2642, // male sign
	0xE08F: 0x2640, // female sign
}

var remapToUnit = func() map[rune]uint16 {
	m := make(map[rune]uint16, len(remapToRune))
	for unit, r := range remapToRune {
		m[r] = unit
	}
	return m
}()

// readUnit reads the little-endian u16 at *pos, advancing it past the unit.
func readUnit(data []byte, pos *int) (uint16, error) {
	if *pos+2 > len(data) {
		return 0, fmt.Errorf("%w: truncated payload", ErrMalformedVariable)
	}
	v := binary.LittleEndian.Uint16(data[*pos:])
	*pos += 2
	return v, nil
}
