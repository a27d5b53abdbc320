package persistence

import (
	"context"

	"github.com/estoque/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// TxManager implements ledger.TxRunner on a GORM connection. Every
// repository handed to fn is bound to the same transaction, so reads in
// fn see one consistent snapshot and writes commit together.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new TxManager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// InTx runs fn inside a single database transaction
func (m *TxManager) InTx(ctx context.Context, fn func(daily ledger.DailyRecordRepository, orders ledger.WorkOrderRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormDailyRecordRepository(tx), NewGormWorkOrderRepository(tx))
	})
}
