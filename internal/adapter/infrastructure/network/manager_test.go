//go:build unit

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_ListLinks(t *testing.T) {
	adapter := NewManagerAdapter()

	links, err := adapter.ListLinks()
	if err != nil {
		t.Skip("netlink not available, skipping test")
	}
	require.NotEmpty(t, links)

	names := make([]string, 0, len(links))
	for _, l := range links {
		names = append(names, l.Attrs().Name)
	}
	assert.Contains(t, names, "lo")
}

func TestManagerAdapter_GetLinkByName(t *testing.T) {
	adapter := NewManagerAdapter()

	t.Run("ValidInterface", func(t *testing.T) {
		link, err := adapter.GetLinkByName("lo")
		if err != nil {
			t.Skip("Loopback interface not available, skipping test")
		}
		assert.Equal(t, "lo", link.Attrs().Name)
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		_, err := adapter.GetLinkByName("nonexistent0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface nonexistent0")
	})
}

func TestManagerAdapter_ListAddresses(t *testing.T) {
	adapter := NewManagerAdapter()

	link, err := adapter.GetLinkByName("lo")
	if err != nil {
		t.Skip("Loopback interface not available, skipping test")
	}

	addresses, err := adapter.ListAddresses(link)
	require.NoError(t, err)
	for _, a := range addresses {
		assert.NotNil(t, a.IP.To4(), "only IPv4 addresses are listed")
	}
}
