package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
	"github.com/sipwell/hydrokit-backend/internal/testhelpers"
)

func TestSeedCatalog(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewKitService(db)
	ctx := context.Background()

	require.NoError(t, svc.SeedCatalog(ctx))

	kits, err := svc.ListKits(ctx)
	require.NoError(t, err)
	assert.Len(t, kits, len(hydration.AllKits))

	for _, kit := range kits {
		assert.NotEmpty(t, kit.Description, kit.Name)
		assert.NotEmpty(t, kit.RitualSteps, kit.Name)
		assert.NotEmpty(t, kit.Archetypes, kit.Name)
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewKitService(db)
	ctx := context.Background()

	require.NoError(t, svc.SeedCatalog(ctx))
	require.NoError(t, svc.SeedCatalog(ctx))

	var count int64
	require.NoError(t, db.Model(&models.Kit{}).Count(&count).Error)
	assert.Equal(t, int64(len(hydration.AllKits)), count)
}

func TestGetKit(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewKitService(db)
	ctx := context.Background()
	require.NoError(t, svc.SeedCatalog(ctx))

	kit, err := svc.GetKit(ctx, "White Ember")
	require.NoError(t, err)
	assert.Equal(t, "White Ember", kit.Name)
	assert.Equal(t, models.StringList{string(hydration.PostSweatCool)}, kit.Archetypes)

	_, err = svc.GetKit(ctx, "Teal Nothing")
	assert.ErrorIs(t, err, ErrKitNotFound)
}

func TestSimilarKitsFallbackOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewKitService(db)
	ctx := context.Background()
	require.NoError(t, svc.SeedCatalog(ctx))

	kits, err := svc.SimilarKits(ctx, "Sky Salt", 0)
	require.NoError(t, err)
	require.Len(t, kits, 3)

	// sqlite falls back to name order and never returns the kit itself
	assert.Equal(t, "Amber Static", kits[0].Name)
	for _, kit := range kits {
		assert.NotEqual(t, "Sky Salt", kit.Name)
	}

	_, err = svc.SimilarKits(ctx, "Teal Nothing", 3)
	assert.ErrorIs(t, err, ErrKitNotFound)
}

func TestSetArtwork(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewKitService(db)
	ctx := context.Background()
	require.NoError(t, svc.SeedCatalog(ctx))

	kit, err := svc.SetArtwork(ctx, "Ghost Bloom", "https://cdn.example.com/kits/ghost-bloom.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/kits/ghost-bloom.png", kit.ArtworkURL)

	stored, err := svc.GetKit(ctx, "Ghost Bloom")
	require.NoError(t, err)
	assert.Equal(t, kit.ArtworkURL, stored.ArtworkURL)
}
