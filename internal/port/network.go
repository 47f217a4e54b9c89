// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -destination=../mock/mock_network.go -package=mock golang-devtools/internal/port NetworkManager,FileManager,GeoLocator,ImageFetcher

import (
	"context"

	"golang-devtools/internal/types"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for network interface operations.
// This interface abstracts the netlink queries used to inspect interface addresses.
type NetworkManager interface {
	// ListLinks returns every network link on the host
	ListLinks() ([]netlink.Link, error)

	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// GeoLocator is a port for an IP geolocation service.
type GeoLocator interface {
	// Lookup returns the location of the given IPv4 address
	Lookup(ctx context.Context, ip string) (*types.Location, error)

	// LookupSelf returns the location of the caller's public address
	LookupSelf(ctx context.Context) (*types.Location, error)
}

// ImageFetcher is a port for downloading rendered images.
type ImageFetcher interface {
	// Fetch downloads the resource at url and returns its body and content type
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
