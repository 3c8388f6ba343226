package database

import (
	"gorm.io/gorm"

	"inventory-app/models"
)

// SeedConditions populates the conservation conditions with the four canonical
// values, only when the table is empty. Existing rows are never overwritten,
// and imports never clear this table.
func SeedConditions(db *gorm.DB) error {
	var total int64
	if err := db.Model(&models.Condition{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	conditions := []models.Condition{
		{Code: 1, Description: "Excelente"},
		{Code: 2, Description: "Bom"},
		{Code: 3, Description: "Regular"},
		{Code: 4, Description: "Péssimo"},
	}

	return db.Create(&conditions).Error
}
