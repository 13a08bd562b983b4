package ledger_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-chandler/restaurant-loyalty-app/internal/ledger"
	"github.com/p-chandler/restaurant-loyalty-app/internal/model"
)

const (
	adminAddr    = "admin"
	spenderAddr  = "loyalty-service"
	ownerAddr    = "0xaaa1"
	otherAddr    = "0xbbb2"
	customerAddr = "0xccc3"
)

func newTestService(t *testing.T) (*ledger.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One in-memory sqlite connection; a second would see an empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Merchant{},
		&model.Customer{},
		&model.PointsRecord{},
		&model.Balance{},
		&model.Allowance{},
		&model.Voucher{},
	))

	return ledger.NewService(db, zap.NewNop(), adminAddr, spenderAddr), db
}

// addMerchant creates a merchant as the administrator and returns its id.
func addMerchant(t *testing.T, svc *ledger.Service, name, owner string) uint {
	t.Helper()
	id, err := svc.AddMerchant(adminAddr, name, "Best "+name+" in town", owner,
		"ipfs://vouchers/"+name+".json", name+" branded mug")
	require.NoError(t, err)
	return id
}

// requireConservation asserts the core invariant: the customer's aggregate
// total and fungible balance both equal the sum of per-merchant records.
func requireConservation(t *testing.T, svc *ledger.Service, db *gorm.DB, customer string) {
	t.Helper()
	var sum int64
	require.NoError(t, db.Model(&model.PointsRecord{}).
		Where("customer = ?", customer).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error)

	total, err := svc.GetCustomerTotalPoints(customer)
	require.NoError(t, err)
	balance, err := svc.BalanceOf(customer)
	require.NoError(t, err)

	require.Equal(t, sum, total, "aggregate total diverged from record sum")
	require.Equal(t, sum, balance, "fungible balance diverged from record sum")
}
