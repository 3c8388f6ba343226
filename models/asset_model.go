package models

// StatusCounted is the sentinel written to InventoryStatus when an asset is
// annotated without an explicit status label. The legacy consumer matches on
// this exact text.
const StatusCounted = "Bem Inventariado!"

type Asset struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"index"`
	Plate       string `json:"plate" gorm:"index"`
	Description string `json:"description"`

	LocationName  string `json:"location_name"`
	ConditionName string `json:"condition_name"`
	StatusName    string `json:"status_name"`

	// OriginLocationCode is the location code exactly as it arrived in the
	// source feed. Write-once at import, never touched by annotation.
	OriginLocationCode string `json:"origin_location_code"`

	// AssignedLocationCode is set by the counting workflow only. NULL until
	// the asset is annotated for the first time.
	AssignedLocationCode *string `json:"assigned_location_code"`

	ConditionCode *string `json:"condition_code"`
	StatusCode    *string `json:"status_code"`

	InventoryStatus string `json:"inventory_status"`
	Observation     string `json:"observation"`
	InventoryID     string `json:"inventory_id" gorm:"index"`
}
