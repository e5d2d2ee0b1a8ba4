package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds one line of player input, in bytes.
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge = errors.New("input too long")
	ErrInvalidUTF8   = errors.New("input is not valid UTF-8")
)

// SanitizeInput validates one line of player input and drops control characters
// other than tab, newline and carriage return. Oversized input is rejected, not
// truncated, so a cut-off answer never satisfies a guard.
// A limit <= 0 means DefaultMaxInputSize.
func SanitizeInput(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}
	switch {
	case len(input) > limit:
		return "", fmt.Errorf("%w (%d bytes, limit %d)", ErrInputTooLarge, len(input), limit)
	case !utf8.ValidString(input):
		return "", ErrInvalidUTF8
	}

	if strings.IndexFunc(input, stripped) < 0 {
		return input, nil
	}
	return strings.Map(func(r rune) rune {
		if stripped(r) {
			return -1
		}
		return r
	}, input), nil
}

func stripped(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return unicode.IsControl(r)
}
