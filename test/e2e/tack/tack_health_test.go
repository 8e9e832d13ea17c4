package tack_test

import (
	"testing"

	"github.com/aussiebroadwan/tack/pkg/tacksdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	c := setupTackContainer(t)
	client := tacksdk.NewSDKClient(c.BaseURL)

	t.Run("livez", func(t *testing.T) {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.GetReadiness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "ok", health.Checks["database"])
	})

	t.Run("meta", func(t *testing.T) {
		meta, err := client.Meta(t.Context())
		require.NoError(t, err)
		require.Len(t, meta.Roles, 3)
		require.Len(t, meta.BoardVisibilities, 2)
	})
}
