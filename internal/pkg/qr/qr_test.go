//go:build unit

package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		u, err := BuildURL("", Request{Text: "hello world"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL+"?size=200x200&data=hello%20world&color=000000&bgcolor=ffffff", u)
	})

	t.Run("CustomColors", func(t *testing.T) {
		u, err := BuildURL("http://qr.local/render", Request{
			Text:       "https://example.com/?a=1&b=2",
			Size:       300,
			Color:      "#FF0000",
			Background: "#0f0",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://qr.local/render?size=300x300&data=https%3A%2F%2Fexample.com%2F%3Fa%3D1%26b%3D2&color=FF0000&bgcolor=0f0", u)
	})

	t.Run("EmptyText", func(t *testing.T) {
		_, err := BuildURL("", Request{Text: "  \n"})
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("SizeBounds", func(t *testing.T) {
		for _, size := range []int{-1, 49, 1001} {
			_, err := BuildURL("", Request{Text: "x", Size: size})
			assert.ErrorIs(t, err, ErrInvalidSize)
		}
		for _, size := range []int{MinSize, MaxSize} {
			_, err := BuildURL("", Request{Text: "x", Size: size})
			assert.NoError(t, err)
		}
	})

	t.Run("InvalidColor", func(t *testing.T) {
		_, err := BuildURL("", Request{Text: "x", Color: "#12345"})
		assert.ErrorIs(t, err, ErrInvalidColor)
		_, err = BuildURL("", Request{Text: "x", Background: "white"})
		assert.ErrorIs(t, err, ErrInvalidColor)
	})
}
