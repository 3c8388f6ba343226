package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-app/apperrors"
	"inventory-app/models"
)

func TestListInventoriesNumericOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "2", InventoryID: "200"})
	seedAsset(t, db, models.Asset{Code: "3", InventoryID: "200"})
	seedAsset(t, db, models.Asset{Code: "4", InventoryID: "99"})

	ids, err := repo.ListInventories()
	require.NoError(t, err)
	// Numeric, not lexicographic: "99" sorts after "100" as a string.
	assert.Equal(t, []string{"200", "100", "99"}, ids)
}

func TestListInventoriesSkipsBlank(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "2", InventoryID: ""})
	seedAsset(t, db, models.Asset{Code: "3", InventoryID: "  "})

	ids, err := repo.ListInventories()
	require.NoError(t, err)
	assert.Equal(t, []string{"100"}, ids)
}

func TestDeleteInventory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "2", InventoryID: "100"})
	seedAsset(t, db, models.Asset{Code: "3", InventoryID: "200"})

	removed, err := repo.DeleteInventory("100")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	ids, err := repo.ListInventories()
	require.NoError(t, err)
	assert.Equal(t, []string{"200"}, ids)
}

func TestDeleteInventoryBlankID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	_, err := repo.DeleteInventory("   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteInventoryUnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	removed, err := repo.DeleteInventory("999")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestResetAllPreservesConditions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	require.NoError(t, db.Create(&models.Location{Code: "001", Name: "Depósito"}).Error)
	require.NoError(t, db.Create(&models.Status{Code: "01", Name: "Em uso"}).Error)

	require.NoError(t, repo.ResetAll())

	var assets, locations, statuses, conditions int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&assets).Error)
	require.NoError(t, db.Model(&models.Location{}).Count(&locations).Error)
	require.NoError(t, db.Model(&models.Status{}).Count(&statuses).Error)
	require.NoError(t, db.Model(&models.Condition{}).Count(&conditions).Error)

	assert.Zero(t, assets)
	assert.Zero(t, locations)
	assert.Zero(t, statuses)
	assert.EqualValues(t, 4, conditions, "seeded conditions survive a reset")
}

func TestResetReferenceTablesKeepsAssets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	seedAsset(t, db, models.Asset{Code: "1", InventoryID: "100"})
	require.NoError(t, db.Create(&models.Location{Code: "001", Name: "Depósito"}).Error)
	require.NoError(t, db.Create(&models.Status{Code: "01", Name: "Em uso"}).Error)

	require.NoError(t, repo.ResetReferenceTables(db))

	var assets, locations, statuses int64
	require.NoError(t, db.Model(&models.Asset{}).Count(&assets).Error)
	require.NoError(t, db.Model(&models.Location{}).Count(&locations).Error)
	require.NoError(t, db.Model(&models.Status{}).Count(&statuses).Error)

	assert.EqualValues(t, 1, assets)
	assert.Zero(t, locations)
	assert.Zero(t, statuses)
}
