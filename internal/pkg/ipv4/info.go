package ipv4

// Info classifies an address.
type Info struct {
	Class     string `json:"class" yaml:"class"`
	Private   bool   `json:"private" yaml:"private"`
	Loopback  bool   `json:"loopback" yaml:"loopback"`
	Multicast bool   `json:"multicast" yaml:"multicast"`
	Special   string `json:"special" yaml:"special"`
}

// Info returns the classful class and special-purpose flags of the address.
func (a Address) Info() Info {
	info := Info{
		Class:     Class(a[0]),
		Private:   a.IsPrivate(),
		Loopback:  a.IsLoopback(),
		Multicast: a.IsMulticast(),
	}

	switch {
	case info.Loopback:
		info.Special = "Loopback"
	case info.Multicast:
		info.Special = "Multicast"
	default:
		info.Special = "Normal"
	}
	return info
}

// Class returns the classful network class for a first octet.
// 0 and 127 belong to no class.
func Class(first byte) string {
	switch {
	case first >= 1 && first <= 126:
		return "A"
	case first >= 128 && first <= 191:
		return "B"
	case first >= 192 && first <= 223:
		return "C"
	case first >= 224 && first <= 239:
		return "D (Multicast)"
	case first >= 240:
		return "E (Experimental)"
	default:
		return "Unknown"
	}
}

// IsPrivate reports whether the address is in an RFC 1918 range.
func (a Address) IsPrivate() bool {
	return a[0] == 10 ||
		(a[0] == 172 && a[1] >= 16 && a[1] <= 31) ||
		(a[0] == 192 && a[1] == 168)
}

// IsLoopback reports whether the address is in 127.0.0.0/8.
func (a Address) IsLoopback() bool {
	return a[0] == 127
}

// IsMulticast reports whether the address is in 224.0.0.0/4.
func (a Address) IsMulticast() bool {
	return a[0] >= 224 && a[0] <= 239
}
