package credential

import (
	"bytes"
	"testing"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_PrefixAndRouting(t *testing.T) {
	for _, flow := range domain.Flows {
		token, err := NewToken(flow)
		require.NoError(t, err)

		assert.Len(t, token, 33)
		got, ok := domain.FlowOfToken(token)
		assert.True(t, ok)
		assert.Equal(t, flow, got)
	}
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token, err := NewToken(domain.FlowStandalone)
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token %s", token)
		seen[token] = struct{}{}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Qabc", Normalize("  Qabc\n"))
}

func TestRenderQR_PNG(t *testing.T) {
	png, err := RenderQR("Q0123456789abcdef0123456789abcdef")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
