package models

import (
	"time"

	"inventory-app/types"
)

// ImportLog records one completed import run per inventory.
type ImportLog struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	InventoryID   string            `json:"inventory_id" gorm:"index"`
	ReadCount     int               `json:"read_count"`
	InsertedCount int               `json:"inserted_count"`
	CreatedAt     time.Time         `json:"created_at"`
}
