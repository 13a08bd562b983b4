package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
)

func TestRegisterCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	c, err := svc.GetCustomer(customerAddr)
	require.NoError(t, err)
	require.Equal(t, "John Doe", c.Name)
	require.True(t, c.Registered)

	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Zero(t, total)

	hasVoucher, err := svc.HasWelcomeVoucher(customerAddr)
	require.NoError(t, err)
	require.False(t, hasVoucher)
}

func TestRegisterCustomerDuplicate(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	err := svc.RegisterCustomer(customerAddr, "John Doe Again", 0)
	require.ErrorIs(t, err, ledger.ErrAlreadyRegistered)

	// The first registration's data is intact.
	c, err := svc.GetCustomer(customerAddr)
	require.NoError(t, err)
	require.Equal(t, "John Doe", c.Name)
}

func TestRegisterCustomerEmptyName(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.RegisterCustomer(customerAddr, "  ", 0)
	require.ErrorIs(t, err, ledger.ErrInvalidInput)

	_, err = svc.GetCustomer(customerAddr)
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRegisterCustomerMintsWelcomeVoucher(t *testing.T) {
	svc, _ := newTestService(t)
	merchantID := addMerchant(t, svc, "Pixel Bistro", ownerAddr)

	require.NoError(t, svc.RegisterCustomer(customerAddr, "Jane Smith", merchantID))

	vouchers, err := svc.GetCustomerVouchers(customerAddr)
	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	require.Equal(t, merchantID, vouchers[0].MerchantID)
	require.Equal(t, customerAddr, vouchers[0].Owner)
	require.Equal(t, "ipfs://vouchers/Pixel Bistro.json", vouchers[0].TokenURI)
	require.False(t, vouchers[0].Redeemed)

	hasVoucher, err := svc.HasWelcomeVoucher(customerAddr)
	require.NoError(t, err)
	require.True(t, hasVoucher)
}

func TestRegisterCustomerUnknownMerchantSkipsVoucher(t *testing.T) {
	svc, _ := newTestService(t)

	// Registration succeeds even though merchant 7 does not exist.
	require.NoError(t, svc.RegisterCustomer(customerAddr, "Jane Smith", 7))

	c, err := svc.GetCustomer(customerAddr)
	require.NoError(t, err)
	require.True(t, c.Registered)

	hasVoucher, err := svc.HasWelcomeVoucher(customerAddr)
	require.NoError(t, err)
	require.False(t, hasVoucher)
}

func TestRegisterCustomerInactiveMerchantSkipsVoucher(t *testing.T) {
	svc, _ := newTestService(t)
	merchantID := addMerchant(t, svc, "Pixel Bistro", ownerAddr)
	require.NoError(t, svc.SetMerchantStatus(ownerAddr, merchantID, false))

	require.NoError(t, svc.RegisterCustomer(customerAddr, "Jane Smith", merchantID))

	c, err := svc.GetCustomer(customerAddr)
	require.NoError(t, err)
	require.True(t, c.Registered)

	hasVoucher, err := svc.HasWelcomeVoucher(customerAddr)
	require.NoError(t, err)
	require.False(t, hasVoucher)
}
