package textfile

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// composeLine converts a textual line into its decrypted byte form,
// terminator included.
func composeLine(line string, cfg *Config, remap bool) ([]byte, error) {
	units, err := composeUnits(line, cfg, remap)
	if err != nil {
		return nil, err
	}
	units = append(units, codeTerminator)
	data := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(data[i*2:], u)
	}
	return data, nil
}

// composeUnits converts a textual line into code units, terminator excluded.
func composeUnits(line string, cfg *Config, remap bool) ([]uint16, error) {
	runes := []rune(line)
	units := make([]uint16, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '[':
			end := indexRune(runes, i+1, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: '[' without ']'", ErrUnterminatedToken)
			}
			vals, err := composeVariable(string(runes[i+1:end]), cfg)
			if err != nil {
				return nil, err
			}
			units = append(units, vals...)
			i = end
		case '{':
			end := indexRune(runes, i+1, '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: '{' without '}'", ErrUnterminatedToken)
			}
			vals, err := composeRuby(string(runes[i+1:end]), remap)
			if err != nil {
				return nil, err
			}
			units = append(units, vals...)
			i = end
		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: trailing backslash", ErrMalformedEscape)
			}
			i++
			vals, err := composeEscape(runes[i])
			if err != nil {
				return nil, err
			}
			units = append(units, vals...)
		default:
			if code, ok := cfg.literalCode(c); ok {
				units = append(units, code)
				break
			}
			u, err := unitForRune(c, remap)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
	}
	return units, nil
}

// composeEscape converts the character following a backslash into its code
// units. \r and \c expand to full variable tokens.
func composeEscape(c rune) ([]uint16, error) {
	switch c {
	case 'n':
		return []uint16{'\n'}, nil
	case '\\':
		return []uint16{'\\'}, nil
	case '[':
		return []uint16{'['}, nil
	case '{':
		return []uint16{'{'}, nil
	case 'r':
		return []uint16{codeVariable, 1, codeReturn}, nil
	case 'c':
		return []uint16{codeVariable, 1, codeClear}, nil
	}
	return nil, fmt.Errorf(`%w: \%c`, ErrMalformedEscape, c)
}

// composeVariable converts a bracketed token body into code units. The body
// is of the form "KIND ARGS": "~ 5", "WAIT 30", "VAR NAME" or
// "VAR NAME(AAAA,BBBB)".
func composeVariable(body string, cfg *Config) ([]uint16, error) {
	kind, args, ok := strings.Cut(body, " ")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedVariable, body)
	}
	switch kind {
	case "~":
		n, err := strconv.ParseUint(args, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: cross-reference %q", ErrMalformedVariable, args)
		}
		return []uint16{codeVariable, 2, codeNull, uint16(n)}, nil
	case "WAIT":
		n, err := strconv.ParseUint(args, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: wait time %q", ErrMalformedVariable, args)
		}
		return []uint16{codeVariable, 2, codeWait, uint16(n)}, nil
	case "VAR":
		name, argList, hasArgs := strings.Cut(args, "(")
		if !hasArgs {
			code, err := cfg.VariableCode(args)
			if err != nil {
				return nil, err
			}
			return []uint16{codeVariable, 1, code}, nil
		}
		code, err := cfg.VariableCode(name)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(strings.TrimSuffix(argList, ")"), ",")
		units := []uint16{codeVariable, uint16(1 + len(parts)), code}
		for _, p := range parts {
			arg, err := strconv.ParseUint(p, 16, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: argument %q", ErrMalformedVariable, p)
			}
			units = append(units, uint16(arg))
		}
		return units, nil
	}
	return nil, fmt.Errorf("%w: unknown variable type %q", ErrMalformedVariable, kind)
}

// composeRuby converts a braced token body of 2 or 3 pipe-separated parts
// into code units. The trailing base defaults to the leading one. Ruby
// payload characters are literal code points; the game variable table does
// not apply inside a ruby.
func composeRuby(body string, remap bool) ([]uint16, error) {
	parts := strings.Split(body, "|")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 2 or 3 parts, got %d", ErrMalformedVariable, len(parts))
	}
	base1 := []rune(parts[0])
	ruby := []rune(parts[1])
	base2 := base1
	if len(parts) == 3 {
		base2 = []rune(parts[2])
		if len(base1) != len(base2) {
			return nil, fmt.Errorf("%w: %q vs %q", ErrRubyLengthMismatch, parts[0], parts[2])
		}
	}
	units := []uint16{
		codeVariable,
		uint16(3 + len(base1) + len(ruby)),
		codeRuby,
		uint16(len(base1)),
		uint16(len(ruby)),
	}
	for _, run := range [][]rune{base1, ruby, base2} {
		for _, r := range run {
			u, err := unitForRune(r, remap)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
	}
	return units, nil
}

// unitForRune converts a literal character to its code unit. The encoded
// form is 16-bit, so characters beyond the basic multilingual plane are
// rejected rather than truncated.
func unitForRune(r rune, remap bool) (uint16, error) {
	if r > 0xFFFF {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRangeChar, r)
	}
	if remap {
		if u, ok := remapToUnit[r]; ok {
			return u, nil
		}
	}
	return uint16(r), nil
}

// indexRune returns the index of the first occurrence of c at or after from,
// or -1 when absent.
func indexRune(runes []rune, from int, c rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == c {
			return i
		}
	}
	return -1
}
