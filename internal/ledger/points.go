package ledger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

// AwardPoints credits points from a merchant to a registered customer. Only
// the merchant owner may call it. The per-merchant record and the customer's
// fungible balance move together in one transaction.
func (s *Service) AwardPoints(caller string, merchantID uint, customer string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m model.Merchant
		if err := tx.First(&m, merchantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: merchant %d", ErrNotFound, merchantID)
			}
			return err
		}
		if m.Owner != caller {
			return fmt.Errorf("%w: not the merchant owner", ErrUnauthorized)
		}

		var c model.Customer
		if err := tx.First(&c, "address = ? AND registered = ?", customer, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %s", ErrNotFound, customer)
			}
			return err
		}

		var rec model.PointsRecord
		err := tx.First(&rec, "merchant_id = ? AND customer = ?", merchantID, customer).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = model.PointsRecord{MerchantID: merchantID, Customer: customer, Points: amount}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			rec.Points += amount
			if err := tx.Save(&rec).Error; err != nil {
				return err
			}
		}

		return mintBalance(tx, customer, amount)
	})
	if err != nil {
		return err
	}
	s.log.Info("points awarded",
		zap.Uint("merchant_id", merchantID),
		zap.String("customer", customer),
		zap.Int64("amount", amount))
	return nil
}

// RedeemPoints spends the caller's points at a merchant. The caller must have
// approved at least amount to the service spender beforehand. The record
// decrement, the allowance decrement and the transfer-then-burn of the
// fungible balance happen in one transaction; on any failure nothing moves.
func (s *Service) RedeemPoints(caller string, merchantID uint, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m model.Merchant
		if err := tx.First(&m, merchantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: merchant %d", ErrNotFound, merchantID)
			}
			return err
		}

		var c model.Customer
		if err := tx.First(&c, "address = ? AND registered = ?", caller, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %s", ErrNotFound, caller)
			}
			return err
		}

		var rec model.PointsRecord
		err := tx.First(&rec, "merchant_id = ? AND customer = ?", merchantID, caller).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && rec.Points < amount) {
			return fmt.Errorf("%w: have %d, want %d", ErrInsufficientPoints, rec.Points, amount)
		}
		if err != nil {
			return err
		}

		var allow model.Allowance
		err = tx.First(&allow, "owner = ? AND spender = ?", caller, s.spender).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && allow.Amount < amount) {
			return fmt.Errorf("%w: approve at least %d to %s first", ErrInsufficientAllowance, amount, s.spender)
		}
		if err != nil {
			return err
		}

		rec.Points -= amount
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		allow.Amount -= amount
		if err := tx.Save(&allow).Error; err != nil {
			return err
		}
		if err := transferBalance(tx, caller, s.spender, amount); err != nil {
			return err
		}
		return burnBalance(tx, s.spender, amount)
	})
	if err != nil {
		return err
	}
	s.log.Info("points redeemed",
		zap.Uint("merchant_id", merchantID),
		zap.String("customer", caller),
		zap.Int64("amount", amount))
	return nil
}

// GetCustomerPoints returns the per-merchant points balance; absent records
// read as zero.
func (s *Service) GetCustomerPoints(merchantID uint, customer string) (int64, error) {
	var rec model.PointsRecord
	err := s.db.First(&rec, "merchant_id = ? AND customer = ?", merchantID, customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Points, nil
}

// GetCustomerTotalPoints returns the customer's aggregate points across all
// merchants, read from the fungible balance that mirrors it.
func (s *Service) GetCustomerTotalPoints(customer string) (int64, error) {
	return s.BalanceOf(customer)
}
