//go:build unit

package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "lookup failed",
		Data: logrus.Fields{
			"component": "geo",
			"tool":      "ipapi",
			"status":    429,
			"ip":        "8.8.8.8",
		},
	}

	t.Run("Simple", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[WARNING][geo][ipapi] lookup failed (ip=8.8.8.8, status=429)\n", string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[15:04:05][WARNING][geo][ipapi] lookup failed (ip=8.8.8.8, status=429)\n", string(out))
	})

	t.Run("NoFields", func(t *testing.T) {
		bare := &logrus.Entry{Level: logrus.InfoLevel, Message: "ready", Data: logrus.Fields{}}
		out, err := (&CompactFormatter{}).Format(bare)
		require.NoError(t, err)
		assert.Equal(t, "[INFO] ready\n", string(out))
	})
}

func TestInitLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithOutput(LogConfig{Level: "debug", Format: "simple"}, &buf)
	t.Cleanup(func() { Logger = nil })

	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	buf.Reset()
	WithComponentAndTool("cli", "hash").WithError(errors.New("boom")).Error("failed")
	assert.Equal(t, "[ERROR][cli][hash] failed (error=boom)\n", buf.String())
}

func TestInitLogger_InvalidValues(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithOutput(LogConfig{Level: "loud", Format: "fancy"}, &buf)
	t.Cleanup(func() { Logger = nil })

	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")
	assert.Contains(t, buf.String(), "Invalid log format 'fancy'")
}
