// Package geo implements the GeoReporter port on top of a GeoLocator.
package geo

import (
	"context"
	"strings"

	"golang-devtools/internal/pkg/geo"
	"golang-devtools/internal/pkg/ipv4"
	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/port"
)

// Manager validates queries, calls the locator and formats the result.
// Lookups are never retried.
type Manager struct {
	locator port.GeoLocator
}

// Ensure Manager implements the GeoReporter port
var _ port.GeoReporter = (*Manager)(nil)

// NewManager creates a geolocation manager.
func NewManager(locator port.GeoLocator) *Manager {
	return &Manager{locator: locator}
}

// Locate reports the location of ip.
func (m *Manager) Locate(ctx context.Context, ip string) geo.Report {
	ip = strings.TrimSpace(ip)
	logger := logging.WithComponentAndTool("geo", "locate").WithField("ip", ip)

	if _, err := ipv4.Parse(ip); err != nil {
		logger.WithError(err).Warn("Rejected geolocation query")
		return geo.FailureReport(ip, err)
	}

	loc, err := m.locator.Lookup(ctx, ip)
	if err != nil {
		logger.WithError(err).Warn("Geolocation lookup failed")
		return geo.FailureReport(ip, err)
	}

	logger.Debug("Geolocation lookup succeeded")
	d := geo.Format(*loc)
	return geo.Report{Query: ip, Location: &d}
}

// LocateSelf reports the location of the caller's public address.
func (m *Manager) LocateSelf(ctx context.Context) geo.Report {
	logger := logging.WithComponentAndTool("geo", "self")

	loc, err := m.locator.LookupSelf(ctx)
	if err != nil {
		logger.WithError(err).Warn("Geolocation lookup failed")
		return geo.FailureReport("", err)
	}

	logger.WithField("ip", loc.IP).Debug("Geolocation lookup succeeded")
	d := geo.Format(*loc)
	return geo.Report{Query: loc.IP, Location: &d}
}
