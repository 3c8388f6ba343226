package models

// Setting is the process-wide key/value store shared with the UI screens.
// Known keys: "inventario" (JSON {"codigoInventario": "..."}), "isEnabled",
// "userEmail".
type Setting struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"uniqueIndex;column:key"`
	Value string `json:"value"`
}

const (
	SettingActiveInventory = "inventario"
	SettingImportEnabled   = "isEnabled"
	SettingUserEmail       = "userEmail"
)
