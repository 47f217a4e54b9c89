// Package uuidgen produces batches of version 4 or version 7 UUIDs.
package uuidgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	DefaultCount   = 1
	MaxCount       = 1000
	DefaultVersion = 4
)

var ErrUnsupportedVersion = errors.New("unsupported uuid version")

// Generate returns count canonical lowercase UUIDs. A count below one yields a
// single UUID and counts above MaxCount are capped. Version 0 means 4.
func Generate(count, version int) ([]string, error) {
	if version == 0 {
		version = DefaultVersion
	}

	var newFn func() (uuid.UUID, error)
	switch version {
	case 4:
		newFn = uuid.NewRandom
	case 7:
		newFn = uuid.NewV7
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	if count <= 0 {
		count = DefaultCount
	}
	if count > MaxCount {
		count = MaxCount
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := newFn()
		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid: %w", err)
		}
		out = append(out, id.String())
	}
	return out, nil
}
