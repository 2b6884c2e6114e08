package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokexplorer/internal/model"
	"pokexplorer/internal/testutil"
)

func sampleItem(id int) model.Item {
	return model.Item{
		ID:      id,
		Name:    "onix",
		Weight:  2100,
		Height:  88,
		Sprites: model.Sprites{FrontDefault: "http://sprites/onix.png"},
		Stats:   []model.Stat{{BaseValue: 35, Stat: model.StatName{Name: "hp"}}},
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	favorites := testutil.SetupTestStore(t)
	ctx := context.Background()

	detail, err := NewDetailSession(ctx, favorites, sampleItem(95))
	require.NoError(t, err)
	assert.False(t, detail.IsFavorite())
	assert.False(t, detail.RefreshRequired())

	fav, err := detail.ToggleFavorite(ctx)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, detail.IsFavorite())

	stored, err := favorites.IsFavorite(ctx, 95)
	require.NoError(t, err)
	assert.True(t, stored)

	fav, err = detail.ToggleFavorite(ctx)
	require.NoError(t, err)
	assert.False(t, fav)

	stored, err = favorites.IsFavorite(ctx, 95)
	require.NoError(t, err)
	assert.False(t, stored, "double toggle must leave membership unchanged")
	assert.True(t, detail.RefreshRequired())
}

func TestFavoriteStateReadOnEntry(t *testing.T) {
	favorites := testutil.SetupTestStore(t)
	ctx := context.Background()

	item := sampleItem(95)
	require.NoError(t, favorites.Put(ctx, item))

	// Re-entering the detail screen reads the store only; there is no
	// catalog dependency at all.
	detail, err := NewDetailSession(ctx, favorites, item)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorite())
	assert.False(t, detail.RefreshRequired())
}

func TestFavoriteIdentityIsByID(t *testing.T) {
	favorites := testutil.SetupTestStore(t)
	ctx := context.Background()

	require.NoError(t, favorites.Put(ctx, sampleItem(95)))

	// The record drifted since it was favorited; membership still holds.
	drifted := sampleItem(95)
	drifted.Sprites.FrontDefault = "http://sprites/onix-v2.png"
	detail, err := NewDetailSession(ctx, favorites, drifted)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorite())
}
