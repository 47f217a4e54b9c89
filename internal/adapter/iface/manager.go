// Package iface implements the InterfaceInspector port using netlink.
package iface

import (
	"context"
	"fmt"

	"golang-devtools/internal/pkg/ipv4"
	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/pkg/subnet"
	"golang-devtools/internal/port"
	"golang-devtools/internal/types"

	"github.com/vishvananda/netlink"
)

// Manager runs the subnet calculator over the IPv4 addresses of local links.
type Manager struct {
	networkMgr port.NetworkManager
}

// Ensure Manager implements the InterfaceInspector port
var _ port.InterfaceInspector = (*Manager)(nil)

// NewManager creates an interface inspector.
func NewManager(networkMgr port.NetworkManager) *Manager {
	return &Manager{networkMgr: networkMgr}
}

// Inspect reports the subnets of link name, or of every link when name is empty.
func (m *Manager) Inspect(ctx context.Context, name string) ([]types.InterfaceSubnet, error) {
	links, err := m.links(name)
	if err != nil {
		return nil, err
	}

	var out []types.InterfaceSubnet
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attrs := link.Attrs()
		logger := logging.WithComponentAndTool("iface", attrs.Name)

		addrs, err := m.networkMgr.ListAddresses(link)
		if err != nil {
			return nil, fmt.Errorf("failed to list addresses: %w", err)
		}

		for _, a := range addrs {
			entry, ok := toSubnet(attrs, a)
			if !ok {
				logger.WithField("addr", a.String()).Debug("Skipping non-IPv4 address")
				continue
			}
			out = append(out, entry)
		}
		logger.WithField("addresses", len(addrs)).Debug("Interface inspected")
	}
	return out, nil
}

func (m *Manager) links(name string) ([]netlink.Link, error) {
	if name == "" {
		return m.networkMgr.ListLinks()
	}

	link, err := m.networkMgr.GetLinkByName(name)
	if err != nil {
		return nil, err
	}
	return []netlink.Link{link}, nil
}

func toSubnet(attrs *netlink.LinkAttrs, a netlink.Addr) (types.InterfaceSubnet, bool) {
	if a.IPNet == nil {
		return types.InterfaceSubnet{}, false
	}
	ip4 := a.IP.To4()
	ones, bits := a.Mask.Size()
	if ip4 == nil || bits != 32 {
		return types.InterfaceSubnet{}, false
	}

	addr := ipv4.Address{ip4[0], ip4[1], ip4[2], ip4[3]}
	return types.InterfaceSubnet{
		Interface: attrs.Name,
		Index:     attrs.Index,
		CIDR:      fmt.Sprintf("%s/%d", addr, ones),
		Subnet:    subnet.Compute(addr, ones),
	}, true
}
