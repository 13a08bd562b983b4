package ledger

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the single serializing authority over merchants, customers,
// points and vouchers. Every mutating operation runs under one mutex and
// inside one database transaction, so callers never observe partial state.
// Reads go straight to the database and only see committed transactions.
type Service struct {
	mu      sync.Mutex
	db      *gorm.DB
	log     *zap.Logger
	admin   string
	spender string
}

// NewService creates the ledger service. admin is the only identity allowed
// to add merchants; spender is the service's own address, the target of
// customer allowances and the intermediate holder during point redemption.
func NewService(db *gorm.DB, log *zap.Logger, admin, spender string) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:      db,
		log:     log,
		admin:   admin,
		spender: spender,
	}
}

// SpenderAddress returns the identity customers must approve before
// redeeming points.
func (s *Service) SpenderAddress() string {
	return s.spender
}
