package models

// Location and Status are reference data, fully replaced at the start of
// every import. Condition is seeded once and survives imports.

type Location struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Status struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Condition struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        int    `json:"code" gorm:"unique"`
	Description string `json:"description"`
}
