package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversion holds the numeric representations of an address.
type Conversion struct {
	Address string `json:"address" yaml:"address"`
	Decimal uint32 `json:"decimal" yaml:"decimal"`
	Hex     string `json:"hex" yaml:"hex"`
	Binary  string `json:"binary" yaml:"binary"`
	Octal   string `json:"octal" yaml:"octal"`
	Info    Info   `json:"info" yaml:"info"`
}

// Convert parses s and derives its decimal, hexadecimal, binary and octal forms.
func Convert(s string) (Conversion, error) {
	addr, err := Parse(strings.TrimSpace(s))
	if err != nil {
		return Conversion{}, err
	}
	return addr.Convert(), nil
}

// Convert derives all representations of the address.
func (a Address) Convert() Conversion {
	return Conversion{
		Address: a.String(),
		Decimal: a.Uint32(),
		Hex:     a.Hex(),
		Binary:  a.Binary(),
		Octal:   a.Octal(),
		Info:    a.Info(),
	}
}

// Hex returns the packed value as 0x followed by 8 uppercase hex digits.
func (a Address) Hex() string {
	return fmt.Sprintf("0x%08X", a.Uint32())
}

// Binary returns each octet as 8 zero-padded bits, joined by dots.
func (a Address) Binary() string {
	parts := make([]string, len(a))
	for i, o := range a {
		parts[i] = fmt.Sprintf("%08b", o)
	}
	return strings.Join(parts, ".")
}

// Octal returns a leading 0 followed by each octet as 3 zero-padded octal digits.
func (a Address) Octal() string {
	var b strings.Builder
	b.WriteByte('0')
	for _, o := range a {
		s := strconv.FormatUint(uint64(o), 8)
		b.WriteString(strings.Repeat("0", 3-len(s)))
		b.WriteString(s)
	}
	return b.String()
}
