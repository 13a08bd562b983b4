package ledger

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

// AddMerchant creates a merchant record with the next sequential id. Only the
// configured administrator may call it.
func (s *Service) AddMerchant(caller, name, description, owner, voucherURI, gift string) (uint, error) {
	if caller != s.admin {
		return 0, fmt.Errorf("%w: only the administrator may add merchants", ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	owner = strings.TrimSpace(owner)
	if name == "" || description == "" {
		return 0, fmt.Errorf("%w: name and description required", ErrInvalidInput)
	}
	if owner == "" {
		return 0, fmt.Errorf("%w: owner address required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m := model.Merchant{
		Name:            name,
		Description:     description,
		Owner:           owner,
		Active:          true,
		VoucherURI:      strings.TrimSpace(voucherURI),
		GiftDescription: strings.TrimSpace(gift),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return 0, err
	}
	s.log.Info("merchant added",
		zap.Uint("id", m.ID),
		zap.String("name", m.Name),
		zap.String("owner", m.Owner))
	return m.ID, nil
}

// UpdateMerchant replaces the mutable fields of an existing merchant. Only
// the stored owner may call it; points history is unaffected.
func (s *Service) UpdateMerchant(caller string, id uint, name, description, owner string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	owner = strings.TrimSpace(owner)
	if name == "" || description == "" {
		return fmt.Errorf("%w: name and description required", ErrInvalidInput)
	}
	if owner == "" {
		return fmt.Errorf("%w: owner address required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m model.Merchant
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: merchant %d", ErrNotFound, id)
			}
			return err
		}
		if m.Owner != caller {
			return fmt.Errorf("%w: not the merchant owner", ErrUnauthorized)
		}
		m.Name = name
		m.Description = description
		m.Owner = owner
		return tx.Save(&m).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("merchant updated", zap.Uint("id", id), zap.String("owner", owner))
	return nil
}

// SetMerchantStatus flips the active flag. Only the stored owner may call it.
// Deactivation hides the merchant from customer-facing listings; its points
// history stays queryable.
func (s *Service) SetMerchantStatus(caller string, id uint, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m model.Merchant
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: merchant %d", ErrNotFound, id)
			}
			return err
		}
		if m.Owner != caller {
			return fmt.Errorf("%w: not the merchant owner", ErrUnauthorized)
		}
		m.Active = active
		return tx.Save(&m).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("merchant status changed", zap.Uint("id", id), zap.Bool("active", active))
	return nil
}

// GetMerchant returns the merchant regardless of active state so historical
// records stay reachable.
func (s *Service) GetMerchant(id uint) (*model.Merchant, error) {
	var m model.Merchant
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: merchant %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &m, nil
}

// ListMerchants enumerates merchants in id order. With activeOnly set,
// deactivated merchants are excluded (the customer-facing view).
func (s *Service) ListMerchants(activeOnly bool) ([]model.Merchant, error) {
	var merchants []model.Merchant
	q := s.db.Order("id asc")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&merchants).Error; err != nil {
		return nil, err
	}
	return merchants, nil
}

// MerchantCount returns how many merchants have ever been added. Ids are
// sequential, so this is also the highest assigned id.
func (s *Service) MerchantCount() (int64, error) {
	var count int64
	if err := s.db.Model(&model.Merchant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetMerchantGift returns the off-ledger merchandise description attached to
// the merchant's welcome voucher.
func (s *Service) GetMerchantGift(id uint) (string, error) {
	m, err := s.GetMerchant(id)
	if err != nil {
		return "", err
	}
	return m.GiftDescription, nil
}
