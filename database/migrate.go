package database

import (
	"log"

	"gorm.io/gorm"

	"inventory-app/models"
)

// Migrate creates the tables if absent and applies the additive column
// migration on assets. Safe to run any number of times.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Location{},
		&models.Status{},
		&models.Condition{},
		&models.Setting{},
		&models.ImportLog{},
	)
	if err != nil {
		return err
	}

	ensureOriginColumn(db)

	return SeedConditions(db)
}

// ensureOriginColumn upgrades asset tables created before origin tracking
// existed. Best effort: a missing column degrades origin history, it does not
// corrupt data, so a failed ALTER is logged and swallowed.
func ensureOriginColumn(db *gorm.DB) {
	if db.Migrator().HasColumn(&models.Asset{}, "origin_location_code") {
		return
	}
	if err := db.Migrator().AddColumn(&models.Asset{}, "OriginLocationCode"); err != nil {
		log.Printf("Warning: could not add origin_location_code to assets: %v", err)
	}
}
