// Package tbl reads the .tbl label sidecar that pairs with a text container.
// The sidecar names the i-th container line with a stable identifier and a
// 64-bit hash; it is never required to decode the container itself.
package tbl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// magic is the first four bytes of every label table, little-endian.
const magic = 0x42544841

const entryHeaderSize = 10 // u64 hash + u16 name length

var (
	ErrBadMagic   = errors.New("tbl: bad magic")
	ErrShortTable = errors.New("tbl: truncated table")
)

// Label names one line of a text container.
type Label struct {
	ID   string
	Hash uint64
}

// PathFor derives the sidecar path paired with a .dat file.
func PathFor(datPath string) string {
	return strings.TrimSuffix(datPath, filepath.Ext(datPath)) + ".tbl"
}

// Decode parses a label table. Names are stored in cp1252 with optional
// trailing NUL padding inside their declared length.
func Decode(data []byte) ([]Label, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortTable, len(data))
	}
	if binary.LittleEndian.Uint32(data) != magic {
		return nil, fmt.Errorf("%w: 0x%08X", ErrBadMagic, binary.LittleEndian.Uint32(data))
	}
	count := int(binary.LittleEndian.Uint32(data[4:]))
	if count > (len(data)-8)/entryHeaderSize {
		return nil, fmt.Errorf("%w: %d entries declared in %d bytes", ErrShortTable, count, len(data))
	}

	decoder := charmap.Windows1252.NewDecoder()
	labels := make([]Label, 0, count)
	pos := 8
	for i := 0; i < count; i++ {
		if pos+entryHeaderSize > len(data) {
			return nil, fmt.Errorf("%w: entry %d", ErrShortTable, i)
		}
		hash := binary.LittleEndian.Uint64(data[pos:])
		nameLen := int(binary.LittleEndian.Uint16(data[pos+8:]))
		pos += entryHeaderSize
		if pos+nameLen > len(data) {
			return nil, fmt.Errorf("%w: entry %d name", ErrShortTable, i)
		}
		raw := bytes.TrimRight(data[pos:pos+nameLen], "\x00")
		pos += nameLen
		name, err := decoder.Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("tbl: entry %d: %w", i, err)
		}
		labels = append(labels, Label{ID: string(name), Hash: hash})
	}
	return labels, nil
}

// ReadFile loads the label table at path. A missing file surfaces as an
// fs.ErrNotExist error for the caller to degrade on.
func ReadFile(path string) ([]Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	labels, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
