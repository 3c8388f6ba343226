package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db}
}

func (r *AssetRepository) GetAssets() ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepository) GetAssetsByInventory(inventoryID string) ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Where("inventory_id = ?", inventoryID).Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindByPlateOrCode looks an asset up by the scanned value, matching either
// identifier. The first match wins, the not-found outcome is distinguishable.
func (r *AssetRepository) FindByPlateOrCode(key string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Where("plate = ? OR code = ?", key, key).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: asset %q", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// CountCounted returns how many assets have been through the counting
// workflow, i.e. carry a non-blank inventory status.
func (r *AssetRepository) CountCounted() (int64, error) {
	var counted int64
	err := r.db.Model(&models.Asset{}).
		Where("inventory_status IS NOT NULL AND TRIM(inventory_status) <> ''").
		Count(&counted).Error
	return counted, err
}

// AnnotateInput carries one field annotation. The display labels are
// optional: a non-empty label overwrites the stored name, an empty one
// leaves it untouched.
type AnnotateInput struct {
	PlateOrCode   string
	LocationCode  string
	ConditionCode string
	StatusCode    string
	Observation   string
	Status        string

	LocationName  string
	ConditionName string
	StatusName    string
}

// Annotate applies a single annotation to every asset matching the plate or
// code. The origin location code is deliberately absent from the SET list: it
// is the immutable record of what the feed said. Returns the number of rows
// updated; zero means nothing matched.
func (r *AssetRepository) Annotate(in AnnotateInput) (int64, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StatusCounted
	}

	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE assets SET
			  assigned_location_code = ?,
			  condition_code         = ?,
			  status_code            = ?,
			  inventory_status       = ?,
			  observation            = ?,
			  location_name  = COALESCE(NULLIF(?, ''), location_name),
			  condition_name = COALESCE(NULLIF(?, ''), condition_name),
			  status_name    = COALESCE(NULLIF(?, ''), status_name)
			WHERE plate = ? OR code = ?`,
			in.LocationCode,
			in.ConditionCode,
			in.StatusCode,
			status,
			in.Observation,
			strings.TrimSpace(in.LocationName),
			strings.TrimSpace(in.ConditionName),
			strings.TrimSpace(in.StatusName),
			in.PlateOrCode,
			in.PlateOrCode,
		)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}
	return affected, nil
}
