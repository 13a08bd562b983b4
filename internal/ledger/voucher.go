package ledger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

// mintWelcomeVoucher creates the welcome voucher inside the registration
// transaction. Registration is the only mint path, and registration is
// one-time, so at most one voucher exists per (customer, merchant) pair.
func (s *Service) mintWelcomeVoucher(tx *gorm.DB, customer string, m *model.Merchant) error {
	v := model.Voucher{
		MerchantID: m.ID,
		Owner:      customer,
		TokenURI:   m.VoucherURI,
	}
	if err := tx.Create(&v).Error; err != nil {
		return err
	}
	s.log.Info("welcome voucher minted",
		zap.Uint("voucher_id", v.ID),
		zap.Uint("merchant_id", m.ID),
		zap.String("owner", customer))
	return nil
}

// RedeemWelcomeVoucher marks the voucher redeemed. Only the voucher owner may
// call it, and only once; the flag never reverts. No token value moves —
// the merchant consults the redeemed state off-ledger before handing over
// merchandise.
func (s *Service) RedeemWelcomeVoucher(caller string, voucherID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var v model.Voucher
		if err := tx.First(&v, voucherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: voucher %d", ErrNotFound, voucherID)
			}
			return err
		}
		if v.Owner != caller {
			return fmt.Errorf("%w: not the voucher owner", ErrUnauthorized)
		}
		if v.Redeemed {
			return fmt.Errorf("%w: voucher %d", ErrAlreadyRedeemed, voucherID)
		}
		v.Redeemed = true
		return tx.Save(&v).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("welcome voucher redeemed",
		zap.Uint("voucher_id", voucherID),
		zap.String("owner", caller))
	return nil
}

// GetCustomerVouchers enumerates the customer's vouchers in mint order.
func (s *Service) GetCustomerVouchers(customer string) ([]model.Voucher, error) {
	var vouchers []model.Voucher
	if err := s.db.Where("owner = ?", customer).Order("id asc").Find(&vouchers).Error; err != nil {
		return nil, err
	}
	return vouchers, nil
}

// IsVoucherRedeemed reports the redeemed flag of the voucher.
func (s *Service) IsVoucherRedeemed(voucherID uint) (bool, error) {
	var v model.Voucher
	if err := s.db.First(&v, voucherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: voucher %d", ErrNotFound, voucherID)
		}
		return false, err
	}
	return v.Redeemed, nil
}

// HasWelcomeVoucher reports whether the customer holds any welcome voucher.
func (s *Service) HasWelcomeVoucher(customer string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Voucher{}).Where("owner = ?", customer).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
