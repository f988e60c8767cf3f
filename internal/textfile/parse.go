package textfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// parseLine renders decrypted line data as its textual form. Parsing stops at
// the terminator or at the end of the buffer, whichever comes first. The
// terminator itself is not part of the result.
func parseLine(data []byte, cfg *Config, remap bool) (string, error) {
	var sb strings.Builder
	pos := 0
	for pos+2 <= len(data) {
		val := binary.LittleEndian.Uint16(data[pos:])
		pos += 2
		switch val {
		case codeTerminator:
			return sb.String(), nil
		case codeVariable:
			text, consumed, err := parseVariable(data[pos:], cfg, remap)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
			pos += consumed
		case uint16('\n'):
			sb.WriteString(`\n`)
		case uint16('\\'):
			sb.WriteString(`\\`)
		case uint16('['):
			sb.WriteString(`\[`)
		case uint16('{'):
			sb.WriteString(`\{`)
		default:
			if r, ok := cfg.literalRune(val); ok {
				sb.WriteRune(r)
				break
			}
			sb.WriteRune(remapUnit(val, remap))
		}
	}
	return sb.String(), nil
}

// parseVariable renders the variable token whose marker was just consumed.
// data starts at the argument count; the returned int is the number of bytes
// consumed from data.
func parseVariable(data []byte, cfg *Config, remap bool) (string, int, error) {
	pos := 0
	count, err := readUnit(data, &pos)
	if err != nil {
		return "", 0, err
	}
	variable, err := readUnit(data, &pos)
	if err != nil {
		return "", 0, err
	}

	switch variable {
	case codeReturn:
		return `\r`, pos, nil
	case codeClear:
		return `\c`, pos, nil
	case codeWait:
		wait, err := readUnit(data, &pos)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[WAIT %d]", wait), pos, nil
	case codeNull:
		line, err := readUnit(data, &pos)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[~ %d]", line), pos, nil
	case codeRuby:
		return parseRuby(data, pos, cfg, remap)
	}

	var sb strings.Builder
	sb.WriteString("[VAR ")
	sb.WriteString(cfg.VariableName(variable))
	if count > 1 {
		sb.WriteByte('(')
		for i := 0; i < int(count)-1; i++ {
			arg, err := readUnit(data, &pos)
			if err != nil {
				return "", 0, err
			}
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%04X", arg)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String(), pos, nil
}

// parseRuby renders a ruby annotation: two length fields, then base, reading
// and trailing base runs. The collapsed two-part form is emitted when both
// base runs are byte-equal.
func parseRuby(data []byte, start int, cfg *Config, remap bool) (string, int, error) {
	pos := start
	baseLen, err := readUnit(data, &pos)
	if err != nil {
		return "", 0, err
	}
	rubyLen, err := readUnit(data, &pos)
	if err != nil {
		return "", 0, err
	}
	need := (2*int(baseLen) + int(rubyLen)) * 2
	if pos+need > len(data) {
		return "", 0, fmt.Errorf("%w: truncated ruby payload", ErrMalformedVariable)
	}
	base1 := data[pos : pos+int(baseLen)*2]
	pos += int(baseLen) * 2
	ruby := data[pos : pos+int(rubyLen)*2]
	pos += int(rubyLen) * 2
	base2 := data[pos : pos+int(baseLen)*2]
	pos += int(baseLen) * 2

	baseText, err := parseLine(base1, cfg, remap)
	if err != nil {
		return "", 0, err
	}
	rubyText, err := parseLine(ruby, cfg, remap)
	if err != nil {
		return "", 0, err
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(baseText)
	sb.WriteByte('|')
	sb.WriteString(rubyText)
	if !bytes.Equal(base1, base2) {
		tail, err := parseLine(base2, cfg, remap)
		if err != nil {
			return "", 0, err
		}
		sb.WriteByte('|')
		sb.WriteString(tail)
	}
	sb.WriteByte('}')
	return sb.String(), pos, nil
}

// remapUnit converts a code unit to its displayed rune.
func remapUnit(val uint16, remap bool) rune {
	if remap {
		if r, ok := remapToRune[val]; ok {
			return r
		}
	}
	return rune(val)
}
