package ledger

import "errors"

var (
	ErrUnauthorized          = errors.New("ledger: unauthorized")
	ErrNotFound              = errors.New("ledger: not found")
	ErrAlreadyRegistered     = errors.New("ledger: customer already registered")
	ErrAlreadyRedeemed       = errors.New("ledger: voucher already redeemed")
	ErrInsufficientPoints    = errors.New("ledger: insufficient points")
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")
	ErrInvalidInput          = errors.New("ledger: invalid input")
)
