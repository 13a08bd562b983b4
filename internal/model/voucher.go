package model

import (
	"time"
)

// Voucher is a non-transferable welcome token minted for a customer when they
// pick a merchant at registration. Redeemed flips to true exactly once, only
// by the owner, and never reverts.
type Voucher struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MerchantID uint      `json:"merchant_id" gorm:"index;not null"`
	Owner      string    `json:"owner" gorm:"type:varchar(128);index;not null"`
	TokenURI   string    `json:"token_uri" gorm:"type:text"`
	Redeemed   bool      `json:"redeemed" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
