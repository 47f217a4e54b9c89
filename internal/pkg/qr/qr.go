// Package qr builds image request URLs for a QR code rendering service.
package qr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang-devtools/internal/pkg/codec"
)

const (
	DefaultBaseURL    = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize       = 200
	MinSize           = 50
	MaxSize           = 1000
	DefaultColor      = "000000"
	DefaultBackground = "ffffff"
	DefaultFilename   = "qr-code.png"
)

var (
	ErrEmptyText    = errors.New("text is empty")
	ErrInvalidSize  = errors.New("invalid size")
	ErrInvalidColor = errors.New("invalid color")
)

var colorPattern = regexp.MustCompile(`^([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Request describes the image to render. Zero values take the defaults.
type Request struct {
	Text       string `json:"text" yaml:"text" schema:"text"`
	Size       int    `json:"size" yaml:"size" schema:"size"`
	Color      string `json:"color" yaml:"color" schema:"color"`
	Background string `json:"background" yaml:"background" schema:"background"`
}

// Normalize fills defaults, strips '#' from colours and validates the request.
func (r Request) Normalize() (Request, error) {
	if strings.TrimSpace(r.Text) == "" {
		return r, ErrEmptyText
	}

	if r.Size == 0 {
		r.Size = DefaultSize
	}
	if r.Size < MinSize || r.Size > MaxSize {
		return r, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSize, r.Size, MinSize, MaxSize)
	}

	var err error
	if r.Color, err = normalizeColor(r.Color, DefaultColor); err != nil {
		return r, err
	}
	if r.Background, err = normalizeColor(r.Background, DefaultBackground); err != nil {
		return r, err
	}
	return r, nil
}

func normalizeColor(c, def string) (string, error) {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if c == "" {
		return def, nil
	}
	if !colorPattern.MatchString(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return c, nil
}

// BuildURL returns the image URL for req against base.
func BuildURL(base string, req Request) (string, error) {
	req, err := req.Normalize()
	if err != nil {
		return "", err
	}
	if base == "" {
		base = DefaultBaseURL
	}

	return fmt.Sprintf("%s?size=%dx%d&data=%s&color=%s&bgcolor=%s",
		base, req.Size, req.Size, codec.EncodeURIComponent(req.Text), req.Color, req.Background), nil
}
