package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/pokedat/internal/ports"
)

// Config resolves variable codes to names, and back, for one game version.
// A Config is read-only after construction and may be shared across files.
type Config struct {
	game   ports.GameVersion
	byCode map[uint16]string
	byName map[string]uint16 // first declaration wins on duplicate names
	byChar map[rune]uint16   // single-character names, e.g. '₽'
	byUnit map[uint16]rune   // inverse of byChar
}

// NewConfig builds the variable table for the given game version.
func NewConfig(game ports.GameVersion) (*Config, error) {
	entries, ok := gameVariables[game]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}
	c := &Config{
		game:   game,
		byCode: make(map[uint16]string, len(entries)),
		byName: make(map[string]uint16, len(entries)),
		byChar: make(map[rune]uint16),
		byUnit: make(map[uint16]rune),
	}
	for _, e := range entries {
		c.byCode[e.code] = e.name
		if _, dup := c.byName[e.name]; !dup {
			c.byName[e.name] = e.code
		}
		if runes := []rune(e.name); len(runes) == 1 {
			c.byChar[runes[0]] = e.code
			c.byUnit[e.code] = runes[0]
		}
	}
	return c, nil
}

// Game returns the game version this Config was built for.
func (c *Config) Game() ports.GameVersion {
	return c.game
}

// VariableName returns the mapped name for a variable code, or its 4-digit
// uppercase hexadecimal form when unmapped.
func (c *Config) VariableName(code uint16) string {
	if name, ok := c.byCode[code]; ok {
		return name
	}
	return fmt.Sprintf("%04X", code)
}

// VariableCode resolves a variable name to its code. Names absent from the
// table are accepted in 0x-prefixed or bare hexadecimal form.
func (c *Config) VariableCode(name string) (uint16, error) {
	if code, ok := c.byName[name]; ok {
		return code, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(name, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: unresolvable name %q", ErrMalformedVariable, name)
	}
	return uint16(n), nil
}

// literalCode reports whether the character is a table entry rendered
// literally (like the Pokédollar sign), and its code unit if so.
func (c *Config) literalCode(r rune) (uint16, bool) {
	code, ok := c.byChar[r]
	return code, ok
}

// literalRune is the inverse of literalCode.
func (c *Config) literalRune(code uint16) (rune, bool) {
	r, ok := c.byUnit[code]
	return r, ok
}
