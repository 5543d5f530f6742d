package services

import (
	"context"
	"testing"

	"agriadmin/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.SoilType{}, &models.CropType{}, &models.Plant{}))
	return db
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Red Soil", NormalizeName("  red   SOIL "))
	assert.Equal(t, "Drip", NormalizeName("drip"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestCatalogAddListDelete(t *testing.T) {
	cat := NewCatalogs(newCatalogDB(t)).SoilTypes
	ctx := context.Background()

	added, err := cat.Add(ctx, models.SoilType{Name: "red  soil"})
	require.NoError(t, err)
	assert.Equal(t, "Red Soil", added.Name)
	assert.GreaterOrEqual(t, added.SoilTypeID, int64(10000))
	assert.LessOrEqual(t, added.SoilTypeID, int64(99999))

	_, err = cat.Add(ctx, models.SoilType{Name: "Black Soil"})
	require.NoError(t, err)

	items, err := cat.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, cat.Delete(ctx, added.SoilTypeID))
	require.ErrorIs(t, cat.Delete(ctx, added.SoilTypeID), ErrNotFound)

	items, err = cat.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Black Soil", items[0].Name)
}

func TestCatalogRejectsBlankAndDuplicateNames(t *testing.T) {
	cat := NewCatalogs(newCatalogDB(t)).SoilTypes
	ctx := context.Background()

	_, err := cat.Add(ctx, models.SoilType{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = cat.Add(ctx, models.SoilType{Name: "Loam"})
	require.NoError(t, err)
	_, err = cat.Add(ctx, models.SoilType{Name: "loam"})
	require.Error(t, err)
}

func TestPlantCatalogValidatesCropType(t *testing.T) {
	catalogs := NewCatalogs(newCatalogDB(t))
	ctx := context.Background()

	missing := int64(12345)
	_, err := catalogs.Plants.Add(ctx, models.Plant{PlantName: "Tomato", CropTypeID: &missing})
	require.ErrorIs(t, err, ErrInvalidInput)

	veg, err := catalogs.CropTypes.Add(ctx, models.CropType{Name: "vegetable"})
	require.NoError(t, err)
	_, err = catalogs.Plants.Add(ctx, models.Plant{PlantName: "tomato", CropTypeID: &veg.CropTypeID})
	require.NoError(t, err)

	plants, err := catalogs.Plants.List(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Tomato", plants[0].PlantName)
	require.NotNil(t, plants[0].CropType)
	assert.Equal(t, "Vegetable", *plants[0].CropType)
}
