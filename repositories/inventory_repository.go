package repositories

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inventory-app/apperrors"
	"inventory-app/models"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

// ListInventories returns the distinct non-blank inventory ids present in the
// asset table, most recent (highest numeric id) first. An inventory exists
// exactly as long as asset rows tagged with its id exist.
func (r *InventoryRepository) ListInventories() ([]string, error) {
	sqlList := `SELECT DISTINCT inventory_id
		FROM assets
		WHERE inventory_id IS NOT NULL AND TRIM(inventory_id) <> ''
		ORDER BY CAST(inventory_id AS INTEGER) DESC`

	var ids []string
	if err := r.db.Raw(sqlList).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteInventory removes every asset row tagged with the given inventory id
// and reports how many there were. Reference tables are untouched.
func (r *InventoryRepository) DeleteInventory(id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, fmt.Errorf("%w: inventory id is required", apperrors.ErrValidation)
	}

	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Asset{}).Where("inventory_id = ?", id).Count(&removed).Error; err != nil {
			return err
		}
		return tx.Where("inventory_id = ?", id).Delete(&models.Asset{}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}
	return removed, nil
}

// ResetAll wipes assets plus both reference tables and resets their
// autoincrement sequences. Conditions are seeded data and survive.
func (r *InventoryRepository) ResetAll() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"assets", "locations", "statuses"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		resetSequences(tx, "assets", "locations", "statuses")
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransaction, err)
	}
	return nil
}

// ResetReferenceTables clears locations and statuses ahead of an import.
// Assets stay: inventories coexist in the asset table keyed by inventory_id.
func (r *InventoryRepository) ResetReferenceTables(tx *gorm.DB) error {
	for _, table := range []string{"locations", "statuses"} {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	resetSequences(tx, "locations", "statuses")
	return nil
}

// resetSequences is best effort: sqlite_sequence only exists once an
// AUTOINCREMENT table has seen an insert.
func resetSequences(tx *gorm.DB, tables ...string) {
	args := make([]interface{}, len(tables))
	marks := make([]string, len(tables))
	for i, t := range tables {
		args[i] = t
		marks[i] = "?"
	}
	_ = tx.Exec(
		"DELETE FROM sqlite_sequence WHERE name IN ("+strings.Join(marks, ",")+")",
		args...,
	).Error
}
