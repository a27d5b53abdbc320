package persistence

import (
	"context"
	"errors"

	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDailyRecordRepository implements DailyRecordRepository using GORM
type GormDailyRecordRepository struct {
	db *gorm.DB
}

// NewGormDailyRecordRepository creates a new GormDailyRecordRepository
func NewGormDailyRecordRepository(db *gorm.DB) *GormDailyRecordRepository {
	return &GormDailyRecordRepository{db: db}
}

// FindByID finds a daily record by its derived ID
func (r *GormDailyRecordRepository) FindByID(ctx context.Context, id string) (*ledger.DailyRecord, error) {
	var record ledger.DailyRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByDateAndMaterial finds the record for a (date, material) key
func (r *GormDailyRecordRepository) FindByDateAndMaterial(ctx context.Context, date, materialID string) (*ledger.DailyRecord, error) {
	var record ledger.DailyRecord
	if err := r.db.WithContext(ctx).
		Where("record_date = ? AND material_id = ?", date, materialID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByDate finds all records for a calendar day
func (r *GormDailyRecordRepository) FindByDate(ctx context.Context, date string) ([]ledger.DailyRecord, error) {
	var records []ledger.DailyRecord
	if err := r.db.WithContext(ctx).
		Where("record_date = ?", date).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByDateRange finds all records with start <= date <= end
func (r *GormDailyRecordRepository) FindByDateRange(ctx context.Context, start, end string) ([]ledger.DailyRecord, error) {
	var records []ledger.DailyRecord
	if err := r.db.WithContext(ctx).
		Where("record_date >= ? AND record_date <= ?", start, end).
		Order("record_date ASC, created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ExistsForDate reports whether any record exists for a day
func (r *GormDailyRecordRepository) ExistsForDate(ctx context.Context, date string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.DailyRecord{}).
		Where("record_date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LatestDateBefore returns the most recent opened date strictly before the
// given date, or "" when none exists. Dates sort lexicographically because
// they are stored as YYYY-MM-DD.
func (r *GormDailyRecordRepository) LatestDateBefore(ctx context.Context, date string) (string, error) {
	var record ledger.DailyRecord
	err := r.db.WithContext(ctx).
		Select("record_date").
		Where("record_date < ?", date).
		Order("record_date DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return record.Date, nil
}

// Save inserts or fully replaces a record, matched by its derived ID
func (r *GormDailyRecordRepository) Save(ctx context.Context, record *ledger.DailyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(record).Error
}

// SaveAll persists a batch of records atomically
func (r *GormDailyRecordRepository) SaveAll(ctx context.Context, records []*ledger.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
			Create(records).Error
	})
}
