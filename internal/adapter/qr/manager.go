// Package qr implements the QRDownloader port.
package qr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/pkg/qr"
	"golang-devtools/internal/port"
)

// ErrFileExists is returned when the target exists and overwriting was not requested.
var ErrFileExists = errors.New("file already exists")

// Manager builds QR image URLs and stores the rendered images.
type Manager struct {
	baseURL string
	fetcher port.ImageFetcher
	files   port.FileManager
}

// Ensure Manager implements the QRDownloader port
var _ port.QRDownloader = (*Manager)(nil)

// NewManager creates a QR manager against the image service at baseURL.
func NewManager(baseURL string, fetcher port.ImageFetcher, files port.FileManager) *Manager {
	if baseURL == "" {
		baseURL = qr.DefaultBaseURL
	}
	return &Manager{baseURL: baseURL, fetcher: fetcher, files: files}
}

// URL builds the image URL for req.
func (m *Manager) URL(req qr.Request) (string, error) {
	return qr.BuildURL(m.baseURL, req)
}

// Download fetches the image for req and writes it to path.
func (m *Manager) Download(ctx context.Context, req qr.Request, path string, force bool) (string, error) {
	if path == "" {
		path = qr.DefaultFilename
	}
	logger := logging.WithComponentAndTool("qr", "download").WithField("path", path)

	url, err := m.URL(req)
	if err != nil {
		return "", err
	}

	if !force && m.files.FileExists(path) {
		return "", fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	data, contentType, err := m.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to download QR code: %w", err)
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("failed to download QR code: unexpected content type %q", contentType)
	}

	if err := m.files.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	logger.WithField("bytes", len(data)).Info("QR code saved")
	return path, nil
}
