package textfile

import "errors"

// Error kinds reported by the codec. Call sites wrap these with positional
// context; classify with errors.Is.
var (
	ErrMalformedHeader     = errors.New("textfile: malformed header")
	ErrMalformedLineEntry  = errors.New("textfile: line entry out of section bounds")
	ErrMalformedCiphertext = errors.New("textfile: ciphertext length not even")
	ErrMalformedEscape     = errors.New("textfile: unknown escape sequence")
	ErrUnterminatedToken   = errors.New("textfile: unterminated token")
	ErrMalformedVariable   = errors.New("textfile: malformed variable")
	ErrRubyLengthMismatch  = errors.New("textfile: ruby base length mismatch")
	ErrUnknownGame         = errors.New("textfile: unknown game version")
	ErrOutOfRangeChar      = errors.New("textfile: character outside the basic multilingual plane")
)
