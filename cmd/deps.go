package cmd

import (
	"golang-devtools/internal/adapter/geo"
	"golang-devtools/internal/adapter/iface"
	infraGeo "golang-devtools/internal/adapter/infrastructure/geo"
	"golang-devtools/internal/adapter/infrastructure/network"
	infraQR "golang-devtools/internal/adapter/infrastructure/qr"
	"golang-devtools/internal/adapter/qr"
	"golang-devtools/internal/pkg/config"
	"golang-devtools/internal/port"
)

// newGeoReporter creates the geolocation manager backed by the HTTP client adapter
func newGeoReporter(c *config.Config) port.GeoReporter {
	return geo.NewManager(infraGeo.NewClientAdapter(c.Geo.Endpoint, c.Geo.Timeout))
}

// newQRDownloader creates the QR manager backed by the image fetcher and file adapters
func newQRDownloader(c *config.Config) port.QRDownloader {
	return qr.NewManager(c.QR.BaseURL, infraQR.NewFetcherAdapter(c.QR.Timeout), fileManager)
}

// newInterfaceInspector creates the interface manager backed by netlink
func newInterfaceInspector() port.InterfaceInspector {
	return iface.NewManager(network.NewManagerAdapter())
}
