package model

import (
	"time"
)

// PointsRecord tracks the per-(merchant, customer) points balance. The sum of
// a customer's records across all merchants always equals the customer's
// fungible Balance row; both are mutated under the same transaction.
type PointsRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MerchantID uint      `json:"merchant_id" gorm:"uniqueIndex:idx_points_merchant_customer;not null"`
	Customer   string    `json:"customer" gorm:"type:varchar(128);uniqueIndex:idx_points_merchant_customer;not null"`
	Points     int64     `json:"points" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
