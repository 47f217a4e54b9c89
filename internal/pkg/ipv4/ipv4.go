// Package ipv4 parses and validates dotted-quad IPv4 addresses and converts them
// between numeric representations.
package ipv4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned when a string is not a canonical dotted-quad address.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// Address is an IPv4 address stored as its four octets, most significant first.
type Address [4]byte

// Parse parses a canonical dotted-quad string.
// Every segment must be a decimal integer in [0,255] without sign, whitespace or
// leading zeros ("0" itself is allowed).
func Parse(s string) (Address, error) {
	var addr Address

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return addr, fmt.Errorf("%w: %q: expected 4 segments, got %d", ErrInvalidAddress, s, len(parts))
	}

	for i, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return Address{}, fmt.Errorf("%w: %q: segment %d: %v", ErrInvalidAddress, s, i+1, err)
		}
		addr[i] = octet
	}

	return addr, nil
}

func parseOctet(part string) (byte, error) {
	if part == "" {
		return 0, errors.New("empty segment")
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, errors.New("leading zero")
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return 0, fmt.Errorf("non-digit character %q", part[i])
		}
	}

	n, err := strconv.Atoi(part)
	if err != nil || n > 255 {
		return 0, fmt.Errorf("value %s out of range", part)
	}
	return byte(n), nil
}

// IsValid reports whether s is a canonical dotted-quad address.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Address {
	addr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// FromUint32 unpacks a 32-bit value into an address.
func FromUint32(v uint32) Address {
	return Address{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Uint32 packs the address big-endian.
func (a Address) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// String returns the dotted-quad form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Octets returns the octets as ints, convenient for display.
func (a Address) Octets() []int {
	return []int{int(a[0]), int(a[1]), int(a[2]), int(a[3])}
}
