package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/database"
	"inventory-app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedAsset(t *testing.T, db *gorm.DB, asset models.Asset) models.Asset {
	t.Helper()
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func TestFindByPlateOrCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	seedAsset(t, db, models.Asset{Code: "1234", Plate: "42", Description: "Mesa", InventoryID: "100"})

	byCode, err := repo.FindByPlateOrCode("1234")
	require.NoError(t, err)
	assert.Equal(t, "Mesa", byCode.Description)

	byPlate, err := repo.FindByPlateOrCode("42")
	require.NoError(t, err)
	assert.Equal(t, "Mesa", byPlate.Description)
}

func TestFindByPlateOrCodeNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	_, err := repo.FindByPlateOrCode("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAnnotateSetsFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	seedAsset(t, db, models.Asset{
		Code:               "1234",
		Plate:              "42",
		LocationName:       "Origem",
		OriginLocationCode: "003",
		InventoryID:        "100",
	})

	updated, err := repo.Annotate(AnnotateInput{
		PlateOrCode:   "42",
		LocationCode:  "007",
		ConditionCode: "2",
		StatusCode:    "1",
		Observation:   "riscado",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	var asset models.Asset
	require.NoError(t, db.Where("code = ?", "1234").First(&asset).Error)

	require.NotNil(t, asset.AssignedLocationCode)
	assert.Equal(t, "007", *asset.AssignedLocationCode)
	assert.Equal(t, "003", asset.OriginLocationCode, "origin code is immutable")
	assert.Equal(t, models.StatusCounted, asset.InventoryStatus, "empty status falls back to the counted sentinel")
	assert.Equal(t, "riscado", asset.Observation)
}

func TestAnnotateLabelFallback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	seedAsset(t, db, models.Asset{
		Code:          "55",
		LocationName:  "Depósito",
		ConditionName: "Bom",
		StatusName:    "Em uso",
		InventoryID:   "100",
	})

	// Empty labels leave the stored names untouched.
	_, err := repo.Annotate(AnnotateInput{PlateOrCode: "55", LocationCode: "001"})
	require.NoError(t, err)

	var asset models.Asset
	require.NoError(t, db.Where("code = ?", "55").First(&asset).Error)
	assert.Equal(t, "Depósito", asset.LocationName)
	assert.Equal(t, "Bom", asset.ConditionName)
	assert.Equal(t, "Em uso", asset.StatusName)

	// Non-empty labels overwrite.
	_, err = repo.Annotate(AnnotateInput{PlateOrCode: "55", LocationCode: "002", LocationName: "Warehouse A"})
	require.NoError(t, err)

	require.NoError(t, db.Where("code = ?", "55").First(&asset).Error)
	assert.Equal(t, "Warehouse A", asset.LocationName)
	assert.Equal(t, "Bom", asset.ConditionName)
}

func TestAnnotateExplicitStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	seedAsset(t, db, models.Asset{Code: "9", InventoryID: "100"})

	_, err := repo.Annotate(AnnotateInput{PlateOrCode: "9", Status: "Não localizado"})
	require.NoError(t, err)

	var asset models.Asset
	require.NoError(t, db.Where("code = ?", "9").First(&asset).Error)
	assert.Equal(t, "Não localizado", asset.InventoryStatus)
}

func TestAnnotateUpdatesAllMatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	// Duplicate codes across inventories are a data-quality anomaly; the
	// update deliberately touches every match.
	seedAsset(t, db, models.Asset{Code: "77", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "77", InventoryID: "200"})

	updated, err := repo.Annotate(AnnotateInput{PlateOrCode: "77", LocationCode: "001"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)
}

func TestAnnotateNoMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	updated, err := repo.Annotate(AnnotateInput{PlateOrCode: "ghost"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)
}

func TestCountCounted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "2", InventoryID: "100", InventoryStatus: models.StatusCounted})
	seedAsset(t, db, models.Asset{Code: "3", InventoryID: "100", InventoryStatus: "  "})

	counted, err := repo.CountCounted()
	require.NoError(t, err)
	assert.EqualValues(t, 1, counted)
}
