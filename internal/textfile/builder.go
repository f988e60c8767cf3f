package textfile

import (
	"encoding/binary"
	"fmt"
)

// Builder assembles a container from textual lines. It owns only the line
// and flag lists; offsets, lengths and the byte buffer are computed once,
// at Bytes time.
type Builder struct {
	cfg   *Config
	remap bool

	// FillEmpty substitutes a "[~ <index>]" cross-reference for empty input
	// lines instead of encoding a bare terminator.
	FillEmpty bool

	lines []string
	flags []uint16
}

// NewBuilder returns an empty Builder for the given game configuration.
func NewBuilder(cfg *Config, remap bool) *Builder {
	return &Builder{cfg: cfg, remap: remap}
}

// Append adds one line with its entry flags.
func (b *Builder) Append(line string, flags uint16) {
	b.lines = append(b.lines, line)
	b.flags = append(b.flags, flags)
}

// SetLines replaces the whole line list. flags must be parallel to lines;
// all-zero flags are valid.
func (b *Builder) SetLines(lines []string, flags []uint16) error {
	if len(lines) != len(flags) {
		return fmt.Errorf("textfile: %d lines but %d flags", len(lines), len(flags))
	}
	b.lines = lines
	b.flags = flags
	return nil
}

// Bytes encodes, encrypts and frames the container. An empty Builder yields
// the canonical 20-byte empty container.
func (b *Builder) Bytes() ([]byte, error) {
	if len(b.lines) > 0xFFFF {
		return nil, fmt.Errorf("textfile: %d lines exceed the u16 line count", len(b.lines))
	}

	runs := make([][]byte, len(b.lines))
	for i, line := range b.lines {
		if line == "" && b.FillEmpty {
			line = fmt.Sprintf("[~ %d]", i)
		}
		run, err := composeLine(line, b.cfg, b.remap)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if err := cryptLine(run, lineKey(i)); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if len(run)/2 > 0xFFFF {
			return nil, fmt.Errorf("textfile: line %d exceeds the u16 unit length", i)
		}
		runs[i] = run
	}

	// Size the section before allocating: section length field, entry table,
	// then the runs, each starting 4-byte aligned within the section.
	entries := make([]lineEntry, len(runs))
	used := 4 + len(runs)*8
	for i, run := range runs {
		entries[i] = lineEntry{
			offset: int32(used),
			length: uint16(len(run) / 2),
			flags:  b.flags[i],
		}
		used += len(run)
		if used%4 == 2 {
			used += 2
		}
	}

	out := make([]byte, headerSize+used)
	binary.LittleEndian.PutUint16(out[offTextSections:], 1)
	binary.LittleEndian.PutUint16(out[offLineCount:], uint16(len(runs)))
	binary.LittleEndian.PutUint32(out[offTotalLength:], uint32(used))
	// initial key field stays zero
	binary.LittleEndian.PutUint32(out[offSectionOffset:], headerSize)
	binary.LittleEndian.PutUint32(out[headerSize:], uint32(used))

	base := headerSize + 4
	for i, e := range entries {
		binary.LittleEndian.PutUint32(out[base+i*8:], uint32(e.offset))
		binary.LittleEndian.PutUint16(out[base+i*8+4:], e.length)
		binary.LittleEndian.PutUint16(out[base+i*8+6:], e.flags)
	}
	for i, run := range runs {
		copy(out[headerSize+int(entries[i].offset):], run)
	}
	return out, nil
}
