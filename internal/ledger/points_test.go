package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
)

func TestAwardPoints(t *testing.T) {
	svc, db := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	require.NoError(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 100))

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(100), points)

	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(100), total)

	balance, err := svc.BalanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(100), balance)

	requireConservation(t, svc, db, customerAddr)
}

func TestAwardPointsUnauthorized(t *testing.T) {
	svc, db := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	err := svc.AwardPoints(otherAddr, merchantID, customerAddr, 100)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Zero(t, points)
	requireConservation(t, svc, db, customerAddr)
}

func TestAwardPointsInvalidAmount(t *testing.T) {
	svc, _ := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	require.ErrorIs(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 0), ledger.ErrInvalidInput)
	require.ErrorIs(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, -5), ledger.ErrInvalidInput)
}

func TestAwardPointsMissingParties(t *testing.T) {
	svc, _ := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	require.ErrorIs(t, svc.AwardPoints(ownerAddr, 42, customerAddr, 100), ledger.ErrNotFound)
	require.ErrorIs(t, svc.AwardPoints(ownerAddr, merchantID, "0xdead", 100), ledger.ErrNotFound)
}

func TestRedeemPoints(t *testing.T) {
	svc, db := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))
	require.NoError(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 100))

	require.NoError(t, svc.Approve(customerAddr, 100))
	require.NoError(t, svc.RedeemPoints(customerAddr, merchantID, 50))

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), points)

	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), total)

	balance, err := svc.BalanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), balance)

	// Redemption consumed the matching slice of the allowance.
	allowance, err := svc.AllowanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), allowance)

	requireConservation(t, svc, db, customerAddr)
}

func TestRedeemPointsInsufficient(t *testing.T) {
	svc, db := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))
	require.NoError(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 100))
	require.NoError(t, svc.Approve(customerAddr, 200))
	require.NoError(t, svc.RedeemPoints(customerAddr, merchantID, 50))

	// Attempting to overdraw fails and leaves every balance unchanged.
	err := svc.RedeemPoints(customerAddr, merchantID, 100)
	require.ErrorIs(t, err, ledger.ErrInsufficientPoints)

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), points)

	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), total)

	balance, err := svc.BalanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), balance)

	requireConservation(t, svc, db, customerAddr)
}

func TestRedeemPointsRequiresAllowance(t *testing.T) {
	svc, db := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))
	require.NoError(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 100))

	err := svc.RedeemPoints(customerAddr, merchantID, 50)
	require.ErrorIs(t, err, ledger.ErrInsufficientAllowance)

	require.NoError(t, svc.Approve(customerAddr, 30))
	err = svc.RedeemPoints(customerAddr, merchantID, 50)
	require.ErrorIs(t, err, ledger.ErrInsufficientAllowance)

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(100), points)
	requireConservation(t, svc, db, customerAddr)
}

func TestRedeemPointsInvalidAmount(t *testing.T) {
	svc, _ := newTestService(t)
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	require.ErrorIs(t, svc.RedeemPoints(customerAddr, merchantID, 0), ledger.ErrInvalidInput)
	require.ErrorIs(t, svc.RedeemPoints(customerAddr, merchantID, -1), ledger.ErrInvalidInput)
}

func TestPointsConservationAcrossMerchants(t *testing.T) {
	svc, db := newTestService(t)
	pizzaID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	sushiID := addMerchant(t, svc, "Moonbeam Sushi", otherAddr)
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))

	require.NoError(t, svc.AwardPoints(ownerAddr, pizzaID, customerAddr, 100))
	requireConservation(t, svc, db, customerAddr)

	require.NoError(t, svc.AwardPoints(otherAddr, sushiID, customerAddr, 40))
	requireConservation(t, svc, db, customerAddr)

	require.NoError(t, svc.Approve(customerAddr, 1000))
	require.NoError(t, svc.RedeemPoints(customerAddr, pizzaID, 70))
	requireConservation(t, svc, db, customerAddr)

	require.NoError(t, svc.RedeemPoints(customerAddr, sushiID, 40))
	requireConservation(t, svc, db, customerAddr)

	// Redeeming at one merchant never touches the other merchant's record.
	pizzaPoints, err := svc.GetCustomerPoints(pizzaID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(30), pizzaPoints)

	sushiPoints, err := svc.GetCustomerPoints(sushiID, customerAddr)
	require.NoError(t, err)
	require.Zero(t, sushiPoints)

	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(30), total)
}

func TestScenarioAwardRedeemOverdraw(t *testing.T) {
	svc, db := newTestService(t)

	// Add merchant "Pizza Palace" owned by A, id 1, active.
	merchantID := addMerchant(t, svc, "Pizza Palace", ownerAddr)
	require.Equal(t, uint(1), merchantID)

	// Register customer C with no merchant chosen.
	require.NoError(t, svc.RegisterCustomer(customerAddr, "John Doe", 0))
	hasVoucher, err := svc.HasWelcomeVoucher(customerAddr)
	require.NoError(t, err)
	require.False(t, hasVoucher)

	// A awards 100 points to C on merchant 1.
	require.NoError(t, svc.AwardPoints(ownerAddr, merchantID, customerAddr, 100))

	// C redeems 50.
	require.NoError(t, svc.Approve(customerAddr, 150))
	require.NoError(t, svc.RedeemPoints(customerAddr, merchantID, 50))

	// C attempts to redeem 100: fails, state stays 50/50/50.
	require.ErrorIs(t, svc.RedeemPoints(customerAddr, merchantID, 100), ledger.ErrInsufficientPoints)

	points, err := svc.GetCustomerPoints(merchantID, customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), points)
	total, err := svc.GetCustomerTotalPoints(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), total)
	balance, err := svc.BalanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(50), balance)
	requireConservation(t, svc, db, customerAddr)
}
