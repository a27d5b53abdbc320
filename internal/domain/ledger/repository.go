package ledger

import "context"

// DailyRecordRepository defines the interface for daily record persistence.
// Point lookups are key-indexed; implementations must keep insertion order
// stable on list operations.
type DailyRecordRepository interface {
	// FindByID finds a daily record by its derived ID
	FindByID(ctx context.Context, id string) (*DailyRecord, error)

	// FindByDateAndMaterial finds the record for a (date, material) key
	FindByDateAndMaterial(ctx context.Context, date, materialID string) (*DailyRecord, error)

	// FindByDate finds all records for a calendar day
	FindByDate(ctx context.Context, date string) ([]DailyRecord, error)

	// FindByDateRange finds all records with start <= date <= end
	FindByDateRange(ctx context.Context, start, end string) ([]DailyRecord, error)

	// ExistsForDate reports whether any record exists for a day
	ExistsForDate(ctx context.Context, date string) (bool, error)

	// LatestDateBefore returns the most recent opened date strictly before
	// the given date, or "" when none exists
	LatestDateBefore(ctx context.Context, date string) (string, error)

	// Save inserts or fully replaces a record, matched by its derived ID
	Save(ctx context.Context, record *DailyRecord) error

	// SaveAll persists a batch of records atomically
	SaveAll(ctx context.Context, records []*DailyRecord) error
}

// WorkOrderRepository defines the interface for work order persistence.
// The collection is append-only; existing entries are never mutated.
type WorkOrderRepository interface {
	// Append adds a new work order
	Append(ctx context.Context, order *WorkOrder) error

	// FindByDate finds all work orders for a day, oldest first
	FindByDate(ctx context.Context, date string) ([]WorkOrder, error)

	// FindAll returns every work order, oldest first
	FindAll(ctx context.Context) ([]WorkOrder, error)

	// Count returns the total number of work orders
	Count(ctx context.Context) (int64, error)
}

// TxRunner executes a function against repositories bound to a single
// storage transaction, so every read inside fn observes one consistent
// snapshot and writes become visible atomically.
type TxRunner interface {
	InTx(ctx context.Context, fn func(daily DailyRecordRepository, orders WorkOrderRepository) error) error
}
