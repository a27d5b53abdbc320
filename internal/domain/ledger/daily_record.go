package ledger

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
)

// DateLayout is the calendar-day format used throughout the ledger.
const DateLayout = "2006-01-02"

// ValidateDate checks that a date string is a valid YYYY-MM-DD calendar day.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return shared.NewDomainError("INVALID_DATE", "Date must be a valid YYYY-MM-DD day")
	}
	return nil
}

// RecordID derives the deterministic daily record ID from its natural key.
func RecordID(date, materialID string) string {
	return date + "-" + materialID
}

// Field identifies a human-editable daily record field.
type Field string

const (
	FieldInitial Field = "initial"
	FieldStockIn Field = "stockIn"
)

// DailyRecord is the ledger row for one material on one calendar day.
// (Date, MaterialID) is the natural key; the ID is derived from it, so at
// most one record can exist per key. Balance and final stock are derived
// quantities and never stored independently.
type DailyRecord struct {
	ID         string `gorm:"primaryKey;size:96"`
	Date       string `gorm:"column:record_date;size:10;not null;uniqueIndex:idx_daily_date_material,priority:1"`
	MaterialID string `gorm:"size:64;not null;uniqueIndex:idx_daily_date_material,priority:2"`
	Initial    int    `gorm:"not null"`
	StockIn    int    `gorm:"not null"`
	Used       int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DailyRecord) TableName() string {
	return "daily_records"
}

// NewDailyRecord creates a daily record for a material with the given
// carried-forward initial stock. StockIn and Used start at zero.
func NewDailyRecord(date, materialID string, initial int) (*DailyRecord, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if materialID == "" {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Material ID cannot be empty")
	}
	if initial < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial stock cannot be negative")
	}

	now := time.Now()
	return &DailyRecord{
		ID:         RecordID(date, materialID),
		Date:       date,
		MaterialID: materialID,
		Initial:    initial,
		StockIn:    0,
		Used:       0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Balance returns the stock available before consumption.
func (r *DailyRecord) Balance() int {
	return r.Initial + r.StockIn
}

// Final returns the end-of-day stock. It may be negative, which signals
// over-consumption and must be surfaced, not prevented.
func (r *DailyRecord) Final() int {
	return r.Balance() - r.Used
}

// SetField updates one of the human-editable fields.
// Negative values are rejected rather than clamped, and Used is refused
// here because it only advances through work-order integration.
func (r *DailyRecord) SetField(field Field, value int) error {
	if value < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Field value cannot be negative")
	}

	switch field {
	case FieldInitial:
		r.Initial = value
	case FieldStockIn:
		r.StockIn = value
	default:
		return shared.NewDomainError("INVALID_FIELD", "Field must be one of: initial, stockIn")
	}

	r.UpdatedAt = time.Now()
	return nil
}

// ApplyConsumption advances Used by a work-order quantity.
func (r *DailyRecord) ApplyConsumption(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Consumption quantity must be positive")
	}
	r.Used += quantity
	r.UpdatedAt = time.Now()
	return nil
}
