package ledger

import (
	"context"
	"errors"
	"sort"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BalanceService manages the open-a-day workflow and the editable daily
// balance state.
type BalanceService struct {
	catalog *catalog.Catalog
	daily   ledger.DailyRecordRepository
	tx      ledger.TxRunner
	logger  *zap.Logger
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(
	cat *catalog.Catalog,
	daily ledger.DailyRecordRepository,
	tx ledger.TxRunner,
	logger *zap.Logger,
) *BalanceService {
	return &BalanceService{
		catalog: cat,
		daily:   daily,
		tx:      tx,
		logger:  logger,
	}
}

// OpenDay bulk-creates one record per catalog material for a new date,
// carrying each material's initial stock forward from the most recent
// prior opened date (clamped at zero). The prior state is read and the
// new records written inside one transaction, so the computation sees a
// single consistent snapshot and no partially opened day is observable.
func (s *BalanceService) OpenDay(ctx context.Context, date string) ([]ledger.DailyRecord, error) {
	if err := ledger.ValidateDate(date); err != nil {
		return nil, err
	}

	var opened []ledger.DailyRecord
	err := s.tx.InTx(ctx, func(daily ledger.DailyRecordRepository, _ ledger.WorkOrderRepository) error {
		exists, err := daily.ExistsForDate(ctx, date)
		if err != nil {
			return err
		}
		if exists {
			return shared.ErrDayAlreadyOpen
		}

		prevDate, err := daily.LatestDateBefore(ctx, date)
		if err != nil {
			return err
		}

		carried := make(map[string]int)
		if prevDate != "" {
			prevRecords, err := daily.FindByDate(ctx, prevDate)
			if err != nil {
				return err
			}
			for i := range prevRecords {
				carried[prevRecords[i].MaterialID] = prevRecords[i].Final()
			}
		}

		records := make([]*ledger.DailyRecord, 0, s.catalog.Len())
		for _, mat := range s.catalog.Materials() {
			initial := carried[mat.ID]
			if initial < 0 {
				initial = 0
			}
			record, err := ledger.NewDailyRecord(date, mat.ID, initial)
			if err != nil {
				return err
			}
			records = append(records, record)
		}

		if err := daily.SaveAll(ctx, records); err != nil {
			return err
		}

		opened = make([]ledger.DailyRecord, 0, len(records))
		for _, r := range records {
			opened = append(opened, *r)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, shared.ErrDayAlreadyOpen) {
			s.logger.Error("Failed to open day", zap.String("date", date), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Day opened",
		zap.String("date", date),
		zap.Int("records", len(opened)),
	)
	return opened, nil
}

// UpdateField edits one human-editable field of an existing record.
// Negative values and the integration-managed used field are rejected.
func (s *BalanceService) UpdateField(ctx context.Context, recordID string, field ledger.Field, value int) (*ledger.DailyRecord, error) {
	record, err := s.daily.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.SetField(field, value); err != nil {
		return nil, err
	}

	if err := s.daily.Save(ctx, record); err != nil {
		s.logger.Error("Failed to save field edit",
			zap.String("record_id", recordID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Daily record updated",
		zap.String("record_id", recordID),
		zap.String("field", string(field)),
		zap.Int("value", value),
	)
	return record, nil
}

// RecordsForDate returns the day's records in catalog order, one entry per
// material that has a record. An empty result for a non-empty catalog
// means the day has not been opened.
func (s *BalanceService) RecordsForDate(ctx context.Context, date string) ([]ledger.DailyRecord, error) {
	if err := ledger.ValidateDate(date); err != nil {
		return nil, err
	}

	records, err := s.daily.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return s.catalog.Position(records[i].MaterialID) < s.catalog.Position(records[j].MaterialID)
	})
	return records, nil
}
