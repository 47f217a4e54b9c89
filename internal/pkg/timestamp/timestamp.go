// Package timestamp converts Unix timestamps to human readable dates.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	UTCLayout   = "Mon, 02 Jan 2006 15:04:05 GMT"
	ISOLayout   = "2006-01-02T15:04:05.000Z"
	LocalLayout = "2006-01-02 15:04:05 MST"

	// maxMillis bounds the representable instant to ±100,000,000 days from the epoch.
	maxMillis = 8_640_000_000_000_000
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Clock returns the current instant.
type Clock func() time.Time

// Conversion is a single instant in every supported representation.
type Conversion struct {
	Seconds      int64  `json:"seconds" yaml:"seconds"`
	Milliseconds int64  `json:"milliseconds" yaml:"milliseconds"`
	Local        string `json:"local" yaml:"local"`
	UTC          string `json:"utc" yaml:"utc"`
	ISO          string `json:"iso" yaml:"iso"`
}

// FromSeconds converts whole seconds since the epoch.
func FromSeconds(sec int64, loc *time.Location) (Conversion, error) {
	if sec > maxMillis/1000 || sec < -maxMillis/1000 {
		return Conversion{}, fmt.Errorf("%w: %d seconds out of range", ErrInvalidTimestamp, sec)
	}
	return convert(sec*1000, loc), nil
}

// FromMillis converts milliseconds since the epoch. Seconds are floored.
func FromMillis(ms int64, loc *time.Location) (Conversion, error) {
	if ms > maxMillis || ms < -maxMillis {
		return Conversion{}, fmt.Errorf("%w: %d milliseconds out of range", ErrInvalidTimestamp, ms)
	}
	return convert(ms, loc), nil
}

// Now converts the instant reported by clock.
func Now(clock Clock, loc *time.Location) Conversion {
	if clock == nil {
		clock = time.Now
	}
	return convert(clock().UnixMilli(), loc)
}

// ParseSeconds parses a decimal integer timestamp.
func ParseSeconds(s string) (int64, error) {
	return parse(s)
}

// ParseMillis parses a decimal integer timestamp in milliseconds.
func ParseMillis(s string) (int64, error) {
	return parse(s)
}

func parse(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return v, nil
}

func convert(ms int64, loc *time.Location) Conversion {
	if loc == nil {
		loc = time.Local
	}

	t := time.UnixMilli(ms)
	sec := ms / 1000
	if ms%1000 < 0 {
		sec--
	}

	return Conversion{
		Seconds:      sec,
		Milliseconds: ms,
		Local:        t.In(loc).Format(LocalLayout),
		UTC:          t.UTC().Format(UTCLayout),
		ISO:          t.UTC().Format(ISOLayout),
	}
}
