// Package textfile implements the text container codec used by the Switch-era
// games: a little-endian framed layout of XOR-obfuscated lines, together with
// the escape grammar for the in-game directives embedded in each line.
package textfile

import (
	"encoding/binary"
	"fmt"
)

// Header layout. All fields are little-endian.
const (
	headerSize = 16

	offTextSections  = 0x00 // u16, must be 1
	offLineCount     = 0x02 // u16
	offTotalLength   = 0x04 // u32, section payload length
	offInitialKey    = 0x08 // u32, must be 0
	offSectionOffset = 0x0C // u32, section payload offset from file start
)

// lineEntry locates one ciphertext run inside the section payload. offset is
// relative to the section payload start; length is in code units.
type lineEntry struct {
	offset int32
	length uint16
	flags  uint16
}

// File is an immutable read view over a container buffer. The buffer is
// validated once at construction; decoding never mutates it.
type File struct {
	data        []byte
	cfg         *Config
	remap       bool
	sectionData int
	entries     []lineEntry
}

// New parses and validates a container. The buffer is retained by the view;
// callers must not mutate it while the File is in use.
func New(data []byte, cfg *Config, remap bool) (*File, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedHeader, len(data))
	}
	textSections := binary.LittleEndian.Uint16(data[offTextSections:])
	lineCount := int(binary.LittleEndian.Uint16(data[offLineCount:]))
	totalLength := int(binary.LittleEndian.Uint32(data[offTotalLength:]))
	initialKey := binary.LittleEndian.Uint32(data[offInitialKey:])
	sectionData := int(binary.LittleEndian.Uint32(data[offSectionOffset:]))

	if textSections != 1 {
		return nil, fmt.Errorf("%w: %d text sections", ErrMalformedHeader, textSections)
	}
	if initialKey != 0 {
		return nil, fmt.Errorf("%w: nonzero initial key 0x%08X", ErrMalformedHeader, initialKey)
	}
	if sectionData < headerSize || totalLength < 4 || sectionData+totalLength != len(data) {
		return nil, fmt.Errorf("%w: section at 0x%X with length %d does not span the file",
			ErrMalformedHeader, sectionData, totalLength)
	}
	if sectionLength := int(binary.LittleEndian.Uint32(data[sectionData:])); sectionLength != totalLength {
		return nil, fmt.Errorf("%w: section length %d, total length %d",
			ErrMalformedHeader, sectionLength, totalLength)
	}
	if 4+lineCount*8 > totalLength {
		return nil, fmt.Errorf("%w: %d line entries do not fit the section", ErrMalformedHeader, lineCount)
	}

	f := &File{
		data:        data,
		cfg:         cfg,
		remap:       remap,
		sectionData: sectionData,
		entries:     make([]lineEntry, lineCount),
	}
	base := sectionData + 4
	for i := range f.entries {
		e := lineEntry{
			offset: int32(binary.LittleEndian.Uint32(data[base+i*8:])),
			length: binary.LittleEndian.Uint16(data[base+i*8+4:]),
			flags:  binary.LittleEndian.Uint16(data[base+i*8+6:]),
		}
		if e.offset < 0 || int(e.offset)+int(e.length)*2 > totalLength {
			return nil, fmt.Errorf("%w: line %d at offset %d, %d units",
				ErrMalformedLineEntry, i, e.offset, e.length)
		}
		f.entries[i] = e
	}
	return f, nil
}

// LineCount returns the number of lines in the container.
func (f *File) LineCount() int {
	return len(f.entries)
}

// Flags returns the per-line entry flags, in order.
func (f *File) Flags() []uint16 {
	flags := make([]uint16, len(f.entries))
	for i, e := range f.entries {
		flags[i] = e.flags
	}
	return flags
}

// EncryptedLine returns a copy of the ciphertext run for the line at index.
func (f *File) EncryptedLine(index int) ([]byte, error) {
	if index < 0 || index >= len(f.entries) {
		return nil, fmt.Errorf("textfile: line index %d out of range [0,%d)", index, len(f.entries))
	}
	e := f.entries[index]
	start := f.sectionData + int(e.offset)
	run := make([]byte, int(e.length)*2)
	copy(run, f.data[start:])
	return run, nil
}

// Line decodes the line at index. Any line can be decoded standalone; its
// cipher key depends only on the index.
func (f *File) Line(index int) (string, error) {
	run, err := f.EncryptedLine(index)
	if err != nil {
		return "", err
	}
	if err := cryptLine(run, lineKey(index)); err != nil {
		return "", fmt.Errorf("line %d: %w", index, err)
	}
	text, err := parseLine(run, f.cfg, f.remap)
	if err != nil {
		return "", fmt.Errorf("line %d: %w", index, err)
	}
	return text, nil
}

// Lines decodes every line of the container, in order.
func (f *File) Lines() ([]string, error) {
	lines := make([]string, len(f.entries))
	for i := range f.entries {
		text, err := f.Line(i)
		if err != nil {
			return nil, err
		}
		lines[i] = text
	}
	return lines, nil
}

// GetStrings decodes a container buffer into its lines.
func GetStrings(data []byte, cfg *Config, remap bool) ([]string, error) {
	f, err := New(data, cfg, remap)
	if err != nil {
		return nil, err
	}
	return f.Lines()
}

// GetBytes encodes parallel line and flag sequences into a container buffer.
func GetBytes(lines []string, flags []uint16, cfg *Config, remap bool) ([]byte, error) {
	b := NewBuilder(cfg, remap)
	if err := b.SetLines(lines, flags); err != nil {
		return nil, err
	}
	return b.Bytes()
}
