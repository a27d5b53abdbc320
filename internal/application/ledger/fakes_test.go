package ledger

import (
	"context"
	"sort"

	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/domain/shared"
)

// In-memory repositories mirroring the gorm implementations' contracts,
// including insertion-order listing.

type fakeDailyRepo struct {
	order   []string
	records map[string]*ledger.DailyRecord
	failOn  string // method name to fail, for error-path tests
	err     error
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{records: make(map[string]*ledger.DailyRecord)}
}

func (f *fakeDailyRepo) fail(method string) error {
	if f.failOn == method {
		return f.err
	}
	return nil
}

func (f *fakeDailyRepo) FindByID(ctx context.Context, id string) (*ledger.DailyRecord, error) {
	if err := f.fail("FindByID"); err != nil {
		return nil, err
	}
	if r, ok := f.records[id]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeDailyRepo) FindByDateAndMaterial(ctx context.Context, date, materialID string) (*ledger.DailyRecord, error) {
	if err := f.fail("FindByDateAndMaterial"); err != nil {
		return nil, err
	}
	return f.FindByID(ctx, ledger.RecordID(date, materialID))
}

func (f *fakeDailyRepo) FindByDate(ctx context.Context, date string) ([]ledger.DailyRecord, error) {
	if err := f.fail("FindByDate"); err != nil {
		return nil, err
	}
	var out []ledger.DailyRecord
	for _, id := range f.order {
		if f.records[id].Date == date {
			out = append(out, *f.records[id])
		}
	}
	return out, nil
}

func (f *fakeDailyRepo) FindByDateRange(ctx context.Context, start, end string) ([]ledger.DailyRecord, error) {
	var out []ledger.DailyRecord
	for _, id := range f.order {
		r := f.records[id]
		if r.Date >= start && r.Date <= end {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeDailyRepo) ExistsForDate(ctx context.Context, date string) (bool, error) {
	if err := f.fail("ExistsForDate"); err != nil {
		return false, err
	}
	for _, r := range f.records {
		if r.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDailyRepo) LatestDateBefore(ctx context.Context, date string) (string, error) {
	if err := f.fail("LatestDateBefore"); err != nil {
		return "", err
	}
	var dates []string
	seen := make(map[string]bool)
	for _, r := range f.records {
		if r.Date < date && !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	if len(dates) == 0 {
		return "", nil
	}
	sort.Strings(dates)
	return dates[len(dates)-1], nil
}

func (f *fakeDailyRepo) Save(ctx context.Context, record *ledger.DailyRecord) error {
	if err := f.fail("Save"); err != nil {
		return err
	}
	clone := *record
	if _, exists := f.records[record.ID]; !exists {
		f.order = append(f.order, record.ID)
	}
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeDailyRepo) SaveAll(ctx context.Context, records []*ledger.DailyRecord) error {
	if err := f.fail("SaveAll"); err != nil {
		return err
	}
	for _, r := range records {
		if err := f.Save(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders []ledger.WorkOrder
	err    error
}

func (f *fakeOrderRepo) Append(ctx context.Context, order *ledger.WorkOrder) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindByDate(ctx context.Context, date string) ([]ledger.WorkOrder, error) {
	var out []ledger.WorkOrder
	for _, o := range f.orders {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]ledger.WorkOrder, error) {
	out := make([]ledger.WorkOrder, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

type fakeTxRunner struct {
	daily  *fakeDailyRepo
	orders *fakeOrderRepo
}

func (f *fakeTxRunner) InTx(ctx context.Context, fn func(ledger.DailyRecordRepository, ledger.WorkOrderRepository) error) error {
	return fn(f.daily, f.orders)
}
