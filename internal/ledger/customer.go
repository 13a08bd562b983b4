package ledger

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

// RegisterCustomer creates the customer record for the caller identity. A
// second registration for the same identity fails. When chosenMerchantID is
// non-zero and names an existing active merchant, a welcome voucher is minted
// in the same transaction; a missing or inactive merchant skips the voucher
// without failing the registration.
func (s *Service) RegisterCustomer(caller, name string, chosenMerchantID uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if caller == "" {
		return fmt.Errorf("%w: caller required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Customer
		err := tx.First(&existing, "address = ?", caller).Error
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, caller)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		customer := model.Customer{Address: caller, Name: name, Registered: true}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		s.log.Info("customer registered",
			zap.String("address", caller),
			zap.String("name", name))

		if chosenMerchantID == 0 {
			return nil
		}

		var m model.Merchant
		err = tx.First(&m, chosenMerchantID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The one soft failure in the system: registration must not
			// fail because of an unrelated merchant's state.
			s.log.Warn("welcome voucher skipped: merchant not found",
				zap.Uint("merchant_id", chosenMerchantID),
				zap.String("customer", caller))
			return nil
		}
		if err != nil {
			return err
		}
		if !m.Active {
			s.log.Warn("welcome voucher skipped: merchant inactive",
				zap.Uint("merchant_id", chosenMerchantID),
				zap.String("customer", caller))
			return nil
		}
		return s.mintWelcomeVoucher(tx, caller, &m)
	})
}

// GetCustomer returns the customer record for the address.
func (s *Service) GetCustomer(address string) (*model.Customer, error) {
	var c model.Customer
	if err := s.db.First(&c, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, address)
		}
		return nil, err
	}
	return &c, nil
}
