package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
)

func TestApproveReplacesAllowance(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Approve(customerAddr, 100))
	allowance, err := svc.AllowanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(100), allowance)

	// A second approve replaces the value rather than adding to it.
	require.NoError(t, svc.Approve(customerAddr, 40))
	allowance, err = svc.AllowanceOf(customerAddr)
	require.NoError(t, err)
	require.Equal(t, int64(40), allowance)
}

func TestApproveNegativeAmount(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Approve(customerAddr, -1)
	require.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestBalanceOfUnknownAddress(t *testing.T) {
	svc, _ := newTestService(t)

	balance, err := svc.BalanceOf("0xnobody")
	require.NoError(t, err)
	require.Zero(t, balance)

	allowance, err := svc.AllowanceOf("0xnobody")
	require.NoError(t, err)
	require.Zero(t, allowance)
}
