// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -destination=../mock/mock_infrastructure.go -package=mock golang-devtools/internal/port GeoReporter,QRDownloader,InterfaceInspector

import (
	"context"

	"golang-devtools/internal/pkg/geo"
	"golang-devtools/internal/pkg/qr"
	"golang-devtools/internal/types"
)

// GeoReporter is the primary port for geolocation lookups.
// Lookup failures are reported inside the geo.Report, never as an error.
type GeoReporter interface {
	// Locate validates ip and reports its location
	Locate(ctx context.Context, ip string) geo.Report

	// LocateSelf reports the location of the caller's public address
	LocateSelf(ctx context.Context) geo.Report
}

// QRDownloader is the primary port for QR code images.
type QRDownloader interface {
	// URL builds the image URL for the request
	URL(req qr.Request) (string, error)

	// Download fetches the image and writes it to path. An empty path means qr.DefaultFilename.
	Download(ctx context.Context, req qr.Request, path string, force bool) (string, error)
}

// InterfaceInspector is the primary port for interface subnet reports.
type InterfaceInspector interface {
	// Inspect reports every IPv4 address of the named link, or of all links when name is empty
	Inspect(ctx context.Context, name string) ([]types.InterfaceSubnet, error)
}
