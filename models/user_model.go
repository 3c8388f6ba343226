package models

import "time"

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	FullName     string `json:"full_name"`
	Email        string `json:"email" gorm:"unique"`
	Password     string `json:"-"`
	RecoveryCode string `json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
