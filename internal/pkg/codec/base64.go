// Package codec implements the text encoders: Base64 and URI component escaping.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidBase64 is returned when the input is not decodable Base64.
var ErrInvalidBase64 = errors.New("invalid base64")

// EncodeBase64 encodes the UTF-8 bytes of s with the standard padded alphabet.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 decodes standard Base64, padded or not, ignoring ASCII whitespace.
// Byte sequences that are not valid UTF-8 are replaced with U+FFFD.
func DecodeBase64(s string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	enc := base64.StdEncoding
	if !strings.HasSuffix(clean, "=") && len(clean)%4 != 0 {
		enc = base64.RawStdEncoding
	}

	data, err := enc.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
