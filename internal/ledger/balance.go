package ledger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

// The fungible balance store. Mint, transfer and burn are internal: only the
// points ledger mutates balances, always inside the caller's transaction.
// Approve is the one externally reachable mutation, mirroring the token
// approval step a customer performs before redeeming points.

func mintBalance(tx *gorm.DB, address string, amount int64) error {
	var b model.Balance
	err := tx.First(&b, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.Balance{Address: address, Amount: amount}).Error
	}
	if err != nil {
		return err
	}
	b.Amount += amount
	return tx.Save(&b).Error
}

func debitBalance(tx *gorm.DB, address string, amount int64) error {
	var b model.Balance
	err := tx.First(&b, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: balance of %s", ErrInsufficientPoints, address)
	}
	if err != nil {
		return err
	}
	if b.Amount < amount {
		return fmt.Errorf("%w: balance of %s", ErrInsufficientPoints, address)
	}
	b.Amount -= amount
	return tx.Save(&b).Error
}

func transferBalance(tx *gorm.DB, from, to string, amount int64) error {
	if err := debitBalance(tx, from, amount); err != nil {
		return err
	}
	return mintBalance(tx, to, amount)
}

func burnBalance(tx *gorm.DB, address string, amount int64) error {
	return debitBalance(tx, address, amount)
}

// Approve sets the caller's allowance toward the service spender address.
// The value replaces any previous allowance rather than adding to it.
func (s *Service) Approve(caller string, amount int64) error {
	if caller == "" {
		return fmt.Errorf("%w: caller required", ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("%w: allowance must be non-negative", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var a model.Allowance
		err := tx.First(&a, "owner = ? AND spender = ?", caller, s.spender).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.Allowance{Owner: caller, Spender: s.spender, Amount: amount}).Error
		}
		if err != nil {
			return err
		}
		a.Amount = amount
		return tx.Save(&a).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("allowance approved",
		zap.String("owner", caller),
		zap.Int64("amount", amount))
	return nil
}

// BalanceOf returns the fungible balance of the address; absent rows read as
// zero.
func (s *Service) BalanceOf(address string) (int64, error) {
	var b model.Balance
	err := s.db.First(&b, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return b.Amount, nil
}

// AllowanceOf returns how much of owner's balance the service spender may
// currently move.
func (s *Service) AllowanceOf(owner string) (int64, error) {
	var a model.Allowance
	err := s.db.First(&a, "owner = ? AND spender = ?", owner, s.spender).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return a.Amount, nil
}
