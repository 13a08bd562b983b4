package model

import (
	"time"
)

// Customer represents a registered loyalty member keyed by the caller
// address. Registered flips to true exactly once and never reverts.
type Customer struct {
	Address    string    `json:"address" gorm:"primaryKey;type:varchar(128)"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Registered bool      `json:"registered" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
