package codec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidURIComponent is returned for malformed percent escapes or escapes
// that do not decode to UTF-8.
var ErrInvalidURIComponent = errors.New("invalid URI component")

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes every byte of s except the unreserved
// characters A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// DecodeURIComponent reverses EncodeURIComponent. A '+' is kept as is.
func DecodeURIComponent(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("%w: truncated escape at offset %d", ErrInvalidURIComponent, i)
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("%w: bad escape %q at offset %d", ErrInvalidURIComponent, s[i:i+3], i)
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%w: escapes do not form valid UTF-8", ErrInvalidURIComponent)
	}
	return out, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
