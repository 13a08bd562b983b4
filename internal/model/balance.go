package model

import (
	"time"
)

// Balance is a fungible token balance keyed by holder address. Rows are
// created lazily on first mint and mirror the holder's aggregate points
// total 1:1.
type Balance struct {
	Address   string    `json:"address" gorm:"primaryKey;type:varchar(128)"`
	Amount    int64     `json:"amount" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Allowance records how much of Owner's balance Spender may move on the
// owner's behalf. Point redemption requires a prior allowance to the loyalty
// service spender address.
type Allowance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Owner     string    `json:"owner" gorm:"type:varchar(128);uniqueIndex:idx_allowance_owner_spender;not null"`
	Spender   string    `json:"spender" gorm:"type:varchar(128);uniqueIndex:idx_allowance_owner_spender;not null"`
	Amount    int64     `json:"amount" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
