package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCleanField(t *testing.T) {
	require.Nil(t, CleanField(nil))
	for _, token := range []string{"None", "", "-", "_", "NA", "N/A"} {
		require.Nil(t, CleanField(strPtr(token)), "token %q should clean to nil", token)
	}
	require.Equal(t, "29.3", *CleanField(strPtr("29.3")))
	require.Equal(t, "n/a", *CleanField(strPtr("n/a")), "cleaning is case sensitive")
}

func TestCleanMetadata(t *testing.T) {
	t.Run("all sentinel fields means no data", func(t *testing.T) {
		m := Metadata(map[string]any{"Symbol": "AAPL"})
		m.Name = strPtr("")
		m.Sector = strPtr("-")
		m.PeRatio = strPtr("None")

		require.False(t, CleanMetadata(&m))
		require.Nil(t, m.Name)
		require.Nil(t, m.PeRatio)
	})

	t.Run("degraded record has no data", func(t *testing.T) {
		m := Metadata(map[string]any{})
		require.False(t, CleanMetadata(&m))
	})

	t.Run("one real field survives", func(t *testing.T) {
		m := Metadata(map[string]any{"Symbol": "AAPL", "Name": "Apple Inc"})

		require.True(t, CleanMetadata(&m))
		require.Equal(t, "Apple Inc", *m.Name)
		require.Nil(t, m.Description, "NA placeholder should clean to nil")
	})
}
