package types

import "golang-devtools/internal/pkg/subnet"

// InterfaceSubnet pairs one IPv4 address of a network link with its subnet calculation.
type InterfaceSubnet struct {
	Interface string        `json:"interface" yaml:"interface"` // Link name, e.g. "eth0"
	Index     int           `json:"index" yaml:"index"`         // Kernel link index
	CIDR      string        `json:"cidr" yaml:"cidr"`           // Address in a.b.c.d/n form
	Subnet    subnet.Result `json:"subnet" yaml:"subnet"`
}
