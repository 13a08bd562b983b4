package model

import (
	"time"
)

// Merchant represents a participating restaurant. The Owner address controls
// all mutations of the record and is the only identity allowed to award
// points for this merchant. Merchants are never deleted; deactivation is the
// terminal state and only hides the merchant from customer-facing listings.
type Merchant struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"type:varchar(100);not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	Owner           string    `json:"owner" gorm:"type:varchar(128);index;not null"`
	Active          bool      `json:"active" gorm:"not null;default:true"`
	VoucherURI      string    `json:"voucher_uri" gorm:"type:text"`
	GiftDescription string    `json:"gift_description" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
