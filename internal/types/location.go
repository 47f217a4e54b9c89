// Package types defines common types used across the application.
package types

// Location is the raw geolocation record returned by a GeoLocator.
// Field names follow the ipapi.co JSON document.
type Location struct {
	IP          string   `json:"ip"`           // Queried address
	CountryName string   `json:"country_name"` // e.g. "Argentina"
	CountryCode string   `json:"country_code"` // ISO 3166-1 alpha-2
	RegionCode  string   `json:"region_code"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	Postal      string   `json:"postal"`
	Latitude    *float64 `json:"latitude"` // nil when the service omits it
	Longitude   *float64 `json:"longitude"`
	Timezone    string   `json:"timezone"` // IANA zone name
	Org         string   `json:"org"`      // Reported as both ISP and organisation
	ASN         string   `json:"asn"`

	// Error and Reason are set by the service on failed lookups.
	Error  bool   `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}
