package persistence

import (
	"context"

	"github.com/estoque/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
// Work orders are append-only, so the repository never updates or deletes.
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// Append adds a new work order
func (r *GormWorkOrderRepository) Append(ctx context.Context, order *ledger.WorkOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByDate finds all work orders for a day, oldest first
func (r *GormWorkOrderRepository) FindByDate(ctx context.Context, date string) ([]ledger.WorkOrder, error) {
	var orders []ledger.WorkOrder
	if err := r.db.WithContext(ctx).
		Where("order_date = ?", date).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns every work order, oldest first
func (r *GormWorkOrderRepository) FindAll(ctx context.Context) ([]ledger.WorkOrder, error) {
	var orders []ledger.WorkOrder
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the total number of work orders
func (r *GormWorkOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.WorkOrder{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
