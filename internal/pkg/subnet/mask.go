// Package subnet computes IPv4 subnet ranges from an address and a mask given
// either as a CIDR prefix ("/24") or as a dotted netmask ("255.255.255.0").
package subnet

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"golang-devtools/internal/pkg/ipv4"
)

var (
	// ErrInvalidCIDR is returned for a "/N" mask with N outside [0,32].
	ErrInvalidCIDR = errors.New("invalid CIDR prefix (0-32)")
	// ErrInvalidMask is returned when a mask is neither "/N" nor a dotted quad.
	ErrInvalidMask = errors.New("invalid netmask")
	// ErrNonContiguousMask is returned for a dotted netmask whose 1-bits are not contiguous.
	ErrNonContiguousMask = errors.New("netmask bits are not contiguous")
)

// ParseMask accepts "/N" or a dotted netmask and returns the prefix length and
// the netmask in dotted form.
func ParseMask(s string) (int, ipv4.Address, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "/") {
		prefix, ok := parsePrefix(s[1:])
		if !ok {
			return 0, ipv4.Address{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
		}
		return prefix, PrefixToNetmask(prefix), nil
	}

	mask, err := ipv4.Parse(s)
	if err != nil {
		return 0, ipv4.Address{}, fmt.Errorf("%w: %q", ErrInvalidMask, s)
	}

	prefix, err := NetmaskToPrefix(mask)
	if err != nil {
		return 0, ipv4.Address{}, err
	}
	return prefix, mask, nil
}

// parsePrefix accepts only plain decimal digits in [0,32] with no sign and no
// leading zero.
func parsePrefix(s string) (int, bool) {
	if s == "" || len(s) > 2 || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > 32 {
		return 0, false
	}
	return n, true
}

// PrefixToNetmask returns the dotted netmask for a prefix length.
// Prefixes outside [0,32] are clamped.
func PrefixToNetmask(prefix int) ipv4.Address {
	return ipv4.FromUint32(maskBits(prefix))
}

// NetmaskToPrefix counts the leading 1-bits of a netmask.
// Masks such as 255.0.255.0 whose 1-bits are not a single leading run are rejected.
func NetmaskToPrefix(mask ipv4.Address) (int, error) {
	v := mask.Uint32()
	prefix := bits.LeadingZeros32(^v)
	if maskBits(prefix) != v {
		return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
	}
	return prefix, nil
}

func maskBits(prefix int) uint32 {
	switch {
	case prefix <= 0:
		return 0
	case prefix >= 32:
		return 0xFFFFFFFF
	default:
		return ^uint32(0) << (32 - prefix)
	}
}
