// Package geo turns raw geolocation records into display fields.
package geo

import (
	"strconv"

	"golang-devtools/internal/types"
)

// NotAvailable is shown for every value the service did not report.
const NotAvailable = "N/A"

// ErrorPrefix starts the message of every failed lookup Report.
const ErrorPrefix = "failed to get geolocation information: "

// Display is the formatted view of a Location.
type Display struct {
	IP          string `json:"ip" yaml:"ip"`
	Country     string `json:"country" yaml:"country"`
	City        string `json:"city" yaml:"city"`
	Region      string `json:"region" yaml:"region"`
	RegionCode  string `json:"region_code" yaml:"region_code"`
	ISP         string `json:"isp" yaml:"isp"`
	Org         string `json:"org" yaml:"org"`
	AS          string `json:"as" yaml:"as"`
	Timezone    string `json:"timezone" yaml:"timezone"`
	Postal      string `json:"postal" yaml:"postal"`
	Latitude    string `json:"latitude" yaml:"latitude"`
	Longitude   string `json:"longitude" yaml:"longitude"`
	Coordinates string `json:"coordinates" yaml:"coordinates"`
}

// Report is the outcome of one lookup. Exactly one of Location and Error is set.
type Report struct {
	Query    string   `json:"query,omitempty" yaml:"query,omitempty"`
	Location *Display `json:"location,omitempty" yaml:"location,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the lookup produced an error message.
func (r Report) Failed() bool {
	return r.Error != ""
}

// FailureReport wraps err in the standard failure message.
func FailureReport(query string, err error) Report {
	return Report{Query: query, Error: ErrorPrefix + err.Error()}
}

// Format maps a Location to display strings.
func Format(loc types.Location) Display {
	d := Display{
		IP:         orNA(loc.IP),
		City:       orNA(loc.City),
		Region:     orNA(loc.Region),
		RegionCode: orNA(loc.RegionCode),
		ISP:        orNA(loc.Org),
		Org:        orNA(loc.Org),
		AS:         orNA(loc.ASN),
		Timezone:   orNA(loc.Timezone),
		Postal:     orNA(loc.Postal),
		Latitude:   coordinate(loc.Latitude),
		Longitude:  coordinate(loc.Longitude),
	}

	d.Country = orNA(loc.CountryName) + " (" + orNA(loc.CountryCode) + ")"

	d.Coordinates = NotAvailable
	if isSet(loc.Latitude) && isSet(loc.Longitude) {
		d.Coordinates = d.Latitude + ", " + d.Longitude
	}
	return d
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// isSet treats zero as missing.
func isSet(v *float64) bool {
	return v != nil && *v != 0
}

func coordinate(v *float64) string {
	if !isSet(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
