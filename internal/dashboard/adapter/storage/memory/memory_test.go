package memory

import (
	"context"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	_, err := s.Get(ctx, entities.PrefKeyTheme)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	require.NoError(t, s.Set(ctx, entities.PrefKeyTheme, "dark"))
	require.NoError(t, s.Set(ctx, entities.PrefKeyTheme, "light"))

	value, err := s.Get(ctx, entities.PrefKeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestStorageCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStorage()
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
