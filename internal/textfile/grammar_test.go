package textfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lgpe(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig("LGPE")
	require.NoError(t, err)
	return cfg
}

// roundTrip encodes a line to units and decodes it back.
func roundTrip(t *testing.T, cfg *Config, line string, remap bool) string {
	t.Helper()
	data, err := composeLine(line, cfg, remap)
	require.NoError(t, err)
	text, err := parseLine(data, cfg, remap)
	require.NoError(t, err)
	return text
}

func TestComposeUnits(t *testing.T) {
	cfg := lgpe(t)
	tests := []struct {
		name string
		line string
		want []uint16
	}{
		{"plain", "Hi", []uint16{'H', 'i'}},
		{"newline escape", `a\nb`, []uint16{'a', 0x000A, 'b'}},
		{"backslash escape", `\\`, []uint16{0x005C}},
		{"bracket escape", `\[x]`, []uint16{0x005B, 'x', ']'}},
		{"brace escape", `\{y}`, []uint16{0x007B, 'y', '}'}},
		{"return escape", `\r`, []uint16{0x0010, 0x0001, 0xBE00}},
		{"clear escape", `\c`, []uint16{0x0010, 0x0001, 0xBE01}},
		{"wait", "[WAIT 30]", []uint16{0x0010, 0x0002, 0xBE02, 0x001E}},
		{"cross-reference", "[~ 5]", []uint16{0x0010, 0x0002, 0xBDFF, 0x0005}},
		{"named variable", "[VAR TRNAME]", []uint16{0x0010, 0x0001, 0x0100}},
		{"variable with args", "[VAR COLOR(0001)]Red",
			[]uint16{0x0010, 0x0002, 0xFF00, 0x0001, 'R', 'e', 'd'}},
		{"hex variable", "[VAR 1234]", []uint16{0x0010, 0x0001, 0x1234}},
		{"prefixed hex variable", "[VAR 0xBE05]", []uint16{0x0010, 0x0001, 0xBE05}},
		{"literal pokedollar", "100₽", []uint16{'1', '0', '0', 0xE300}},
		{"symmetric ruby", "{ab|xyz}",
			[]uint16{0x0010, 0x0008, 0xFF01, 0x0002, 0x0003, 'a', 'b', 'x', 'y', 'z', 'a', 'b'}},
		{"kanji ruby", "{漢字|かんじ}",
			[]uint16{0x0010, 0x0008, 0xFF01, 0x0002, 0x0003,
				0x6F22, 0x5B57, 0x304B, 0x3093, 0x3058, 0x6F22, 0x5B57}},
		{"asymmetric ruby", "{ab|xy|cd}",
			[]uint16{0x0010, 0x0007, 0xFF01, 0x0002, 0x0002, 'a', 'b', 'x', 'y', 'c', 'd'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := composeUnits(tc.line, cfg, false)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestComposeErrors(t *testing.T) {
	cfg := lgpe(t)
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unknown escape", `\z`, ErrMalformedEscape},
		{"trailing backslash", `oops\`, ErrMalformedEscape},
		{"unterminated variable", "[WAIT 30", ErrUnterminatedToken},
		{"unterminated ruby", "{ab|xy", ErrUnterminatedToken},
		{"variable without space", "[WAIT]", ErrMalformedVariable},
		{"unknown variable type", "[LOOP 3]", ErrMalformedVariable},
		{"unresolvable name", "[VAR NOSUCH]", ErrMalformedVariable},
		{"bad wait time", "[WAIT abc]", ErrMalformedVariable},
		{"bad hex argument", "[VAR COLOR(xyzw)]", ErrMalformedVariable},
		{"one-part ruby", "{solo}", ErrMalformedVariable},
		{"four-part ruby", "{a|b|c|d}", ErrMalformedVariable},
		{"ruby length mismatch", "{ab|xy|abc}", ErrRubyLengthMismatch},
		{"astral character", "a\U0001F600b", ErrOutOfRangeChar},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := composeUnits(tc.line, cfg, false)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGrammarRoundTrip(t *testing.T) {
	cfg := lgpe(t)
	lines := []string{
		"",
		"Hi",
		`line one\nline two`,
		`back\\slash`,
		`\[not a var]`,
		`\{not a ruby}`,
		`Hello\r[WAIT 60]World`,
		`\cCleared`,
		"[~ 5]",
		"[VAR TRNAME]",
		"[VAR COLOR(0001)]Red",
		"[VAR COLOR(0001,0002,0003)]",
		"[VAR 1234]",
		"100₽",
		"{ab|xyz}",
		"{漢字|かんじ}",
		"{ab|xy|cd}",
		"Mixed [VAR POKNAME] and {漢字|かんじ} here",
	}
	for _, line := range lines {
		require.Equal(t, line, roundTrip(t, cfg, line, false), "line %q", line)
	}
}

// An unmapped variable decodes to its hex form, which must re-encode to the
// same code.
func TestUnknownVariableHexRoundTrip(t *testing.T) {
	cfg := lgpe(t)
	units, err := composeUnits("[VAR 2BAD]", cfg, false)
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0010, 0x0001, 0x2BAD}, units)

	data, err := composeLine("[VAR 2BAD(00FF)]", cfg, false)
	require.NoError(t, err)
	text, err := parseLine(data, cfg, false)
	require.NoError(t, err)
	require.Equal(t, "[VAR 2BAD(00FF)]", text)
}

func TestRemapCharacters(t *testing.T) {
	cfg := lgpe(t)

	// remap on: the ellipsis maps into the private-use area and back
	units, err := composeUnits("a…b", cfg, true)
	require.NoError(t, err)
	require.Equal(t, []uint16{'a', 0xE08D, 'b'}, units)
	require.Equal(t, "a…b", roundTrip(t, cfg, "a…b", true))

	// remap off: the raw code point passes through
	units, err = composeUnits("a…b", cfg, false)
	require.NoError(t, err)
	require.Equal(t, []uint16{'a', 0x2026, 'b'}, units)
}

func TestParseTruncatedVariable(t *testing.T) {
	cfg := lgpe(t)
	tests := []struct {
		name  string
		units []uint16
	}{
		{"marker only", []uint16{0x0010}},
		{"missing identifier", []uint16{0x0010, 0x0002}},
		{"missing wait argument", []uint16{0x0010, 0x0002, 0xBE02}},
		{"missing named args", []uint16{0x0010, 0x0003, 0xFF00, 0x0001}},
		{"truncated ruby payload", []uint16{0x0010, 0x0008, 0xFF01, 0x0002, 0x0003, 'a'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLine(unitBytes(tc.units), cfg, false)
			require.ErrorIs(t, err, ErrMalformedVariable)
		})
	}
}

// A missing terminator is tolerated: parsing stops at the end of the buffer.
func TestParseWithoutTerminator(t *testing.T) {
	cfg := lgpe(t)
	text, err := parseLine(unitBytes([]uint16{'H', 'i'}), cfg, false)
	require.NoError(t, err)
	require.Equal(t, "Hi", text)
}

func TestParseAsymmetricRuby(t *testing.T) {
	cfg := lgpe(t)
	units := []uint16{0x0010, 0x0007, 0xFF01, 0x0002, 0x0002, 'a', 'b', 'x', 'y', 'c', 'd', 0x0000}
	text, err := parseLine(unitBytes(units), cfg, false)
	require.NoError(t, err)
	require.Equal(t, "{ab|xy|cd}", text)
}

// unitBytes packs code units little-endian, without appending a terminator.
func unitBytes(units []uint16) []byte {
	data := make([]byte, len(units)*2)
	for i, u := range units {
		data[i*2] = byte(u)
		data[i*2+1] = byte(u >> 8)
	}
	return data
}
