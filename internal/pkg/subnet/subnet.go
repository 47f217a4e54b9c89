package subnet

import (
	"strings"

	"golang-devtools/internal/pkg/ipv4"
)

// Result describes the subnet an address belongs to.
type Result struct {
	Address     string `json:"address" yaml:"address"`
	Prefix      int    `json:"prefix" yaml:"prefix"`
	Netmask     string `json:"netmask" yaml:"netmask"`
	Wildcard    string `json:"wildcard" yaml:"wildcard"`
	Network     string `json:"network" yaml:"network"`
	Broadcast   string `json:"broadcast" yaml:"broadcast"`
	FirstUsable string `json:"first_usable" yaml:"first_usable"`
	LastUsable  string `json:"last_usable" yaml:"last_usable"`
	TotalHosts  uint64 `json:"total_hosts" yaml:"total_hosts"`
	UsableHosts uint64 `json:"usable_hosts" yaml:"usable_hosts"`
	HostBits    int    `json:"host_bits" yaml:"host_bits"`
	NetworkBits int    `json:"network_bits" yaml:"network_bits"`
}

// Calculate parses address and mask and computes the subnet.
func Calculate(address, mask string) (Result, error) {
	addr, err := ipv4.Parse(strings.TrimSpace(address))
	if err != nil {
		return Result{}, err
	}

	prefix, _, err := ParseMask(mask)
	if err != nil {
		return Result{}, err
	}

	return Compute(addr, prefix), nil
}

// Compute derives the subnet of addr for a prefix length in [0,32].
//
// A /31 is a point-to-point link (RFC 3021): both addresses are usable.
// A /32 is a single host: network, broadcast and the usable range collapse to addr.
func Compute(addr ipv4.Address, prefix int) Result {
	if prefix < 0 {
		prefix = 0
	}
	if prefix > 32 {
		prefix = 32
	}

	mask := maskBits(prefix)
	network := addr.Uint32() & mask
	broadcast := network | ^mask
	total := uint64(1) << (32 - prefix)

	var first, last uint32
	var usable uint64
	switch prefix {
	case 32:
		first, last, usable = network, network, 1
	case 31:
		first, last, usable = network, broadcast, 2
	default:
		first, last, usable = network+1, broadcast-1, total-2
	}

	return Result{
		Address:     addr.String(),
		Prefix:      prefix,
		Netmask:     ipv4.FromUint32(mask).String(),
		Wildcard:    ipv4.FromUint32(^mask).String(),
		Network:     ipv4.FromUint32(network).String(),
		Broadcast:   ipv4.FromUint32(broadcast).String(),
		FirstUsable: ipv4.FromUint32(first).String(),
		LastUsable:  ipv4.FromUint32(last).String(),
		TotalHosts:  total,
		UsableHosts: usable,
		HostBits:    32 - prefix,
		NetworkBits: prefix,
	}
}
