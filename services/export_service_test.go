package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
)

func ptr(s string) *string { return &s }

func seedExportAsset(t *testing.T, db *gorm.DB, a models.Asset) {
	t.Helper()
	require.NoError(t, db.Create(&a).Error)
}

func TestExportInventoryLineLayout(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	seedExportAsset(t, db, models.Asset{
		Code:                 "1234",
		Plate:                "42",
		OriginLocationCode:   "003",
		ConditionCode:        ptr("2"),
		StatusCode:           ptr("1"),
		AssignedLocationCode: ptr("7"),
		InventoryID:          "100",
	})

	out, err := svc.ExportInventory("100")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 1)
	// plate(12) origin(3) condition(2) status(2) assigned(3)
	assert.Equal(t, "000000000042"+"003"+"02"+"01"+"007", lines[0])
	assert.Len(t, lines[0], 22)
}

func TestExportInventoryNilCodes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	// Never annotated: assigned location and both codes are still NULL.
	seedExportAsset(t, db, models.Asset{
		Plate:              "42",
		OriginLocationCode: "003",
		InventoryID:        "100",
	})

	out, err := svc.ExportInventory("100")
	require.NoError(t, err)
	assert.Equal(t, "000000000042"+"003"+"00"+"00"+"000"+"\n", string(out))
}

func TestExportInventoryOverlongPlateKeepsRightmostDigits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	seedExportAsset(t, db, models.Asset{
		Plate:              "9999888877776666",
		OriginLocationCode: "003",
		InventoryID:        "100",
	})

	out, err := svc.ExportInventory("100")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "888877776666"))
}

func TestExportInventoryStripsNonDigitsFromOrigin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	seedExportAsset(t, db, models.Asset{
		Plate:              "1",
		OriginLocationCode: "A3B",
		InventoryID:        "100",
	})

	out, err := svc.ExportInventory("100")
	require.NoError(t, err)
	assert.Equal(t, "003", string(out)[12:15])
}

func TestExportInventoryScopedToInventory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	seedExportAsset(t, db, models.Asset{Plate: "1", InventoryID: "100"})
	seedExportAsset(t, db, models.Asset{Plate: "2", InventoryID: "200"})
	seedExportAsset(t, db, models.Asset{Plate: "3", InventoryID: "100"})

	out, err := svc.ExportInventory("100")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestExportInventoryEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	_, err := svc.ExportInventory("999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExportInventoryBlankID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExportService(db)

	_, err := svc.ExportInventory("   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImportExportRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	importSvc := NewImportService(db)
	exportSvc := NewExportService(db)

	assets := assetLine("0000001234", "000000000042", "Mesa", "Depósito", "Bom", "Em uso", "003", "2", "1")
	_, err := importSvc.ImportInventory(feedFiles(t, assets, locationLine("003", "Depósito"), statusLine("01", "Em uso")), "100", Events{})
	require.NoError(t, err)

	out, err := exportSvc.ExportInventory("100")
	require.NoError(t, err)

	line := strings.TrimRight(string(out), "\n")
	assert.Equal(t, "000000000042", line[:12], "plate re-padded to the feed width")
	assert.Equal(t, "003", line[12:15], "origin code survives the round trip")
	assert.Equal(t, "02", line[15:17])
	assert.Equal(t, "01", line[17:19])
	assert.Equal(t, "000", line[19:22], "assigned location unset without annotation")
}
