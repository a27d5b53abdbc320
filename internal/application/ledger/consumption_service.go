package ledger

import (
	"context"
	"errors"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecordConsumptionInput carries the fields of a new work order.
type RecordConsumptionInput struct {
	OrderNumber string
	Date        string
	MaterialID  string
	Quantity    int
	IsRequired  bool
}

// ConsumptionResult reports the appended work order and whether the
// matching daily record was updated. DailyUpdateApplied is false when the
// day was not open; the order is still recorded and the caller must warn
// the user that the balance was not touched.
type ConsumptionResult struct {
	WorkOrder          *ledger.WorkOrder
	DailyUpdateApplied bool
}

// ConsumptionService records work-order consumption events and advances
// the matching daily record's used total.
type ConsumptionService struct {
	catalog *catalog.Catalog
	orders  ledger.WorkOrderRepository
	tx      ledger.TxRunner
	logger  *zap.Logger
}

// NewConsumptionService creates a new ConsumptionService
func NewConsumptionService(
	cat *catalog.Catalog,
	orders ledger.WorkOrderRepository,
	tx ledger.TxRunner,
	logger *zap.Logger,
) *ConsumptionService {
	return &ConsumptionService{
		catalog: cat,
		orders:  orders,
		tx:      tx,
		logger:  logger,
	}
}

// RecordConsumption validates and appends a work order, then increments
// the matching daily record's used field when that day is open. The order
// is appended regardless, so the audit trail is never lost. When the day
// is not open the quantity is NOT applied later: opening a day does not
// reconcile previously recorded orders.
func (s *ConsumptionService) RecordConsumption(ctx context.Context, input RecordConsumptionInput) (*ConsumptionResult, error) {
	order, err := ledger.NewWorkOrder(input.OrderNumber, input.Date, input.MaterialID, input.Quantity, input.IsRequired)
	if err != nil {
		return nil, err
	}
	if !s.catalog.Contains(input.MaterialID) {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Unknown material: "+input.MaterialID)
	}

	result := &ConsumptionResult{WorkOrder: order}
	err = s.tx.InTx(ctx, func(daily ledger.DailyRecordRepository, orders ledger.WorkOrderRepository) error {
		if err := orders.Append(ctx, order); err != nil {
			return err
		}

		record, err := daily.FindByDateAndMaterial(ctx, order.Date, order.MaterialID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil
			}
			return err
		}

		if err := record.ApplyConsumption(order.Quantity); err != nil {
			return err
		}
		if err := daily.Save(ctx, record); err != nil {
			return err
		}
		result.DailyUpdateApplied = true
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to record consumption",
			zap.String("order_number", input.OrderNumber),
			zap.Error(err))
		return nil, err
	}

	if result.DailyUpdateApplied {
		s.logger.Info("Work order recorded",
			zap.String("order_number", order.OrderNumber),
			zap.String("date", order.Date),
			zap.String("material_id", order.MaterialID),
			zap.Int("quantity", order.Quantity),
		)
	} else {
		s.logger.Warn("Work order recorded without daily update: day not opened",
			zap.String("order_number", order.OrderNumber),
			zap.String("date", order.Date),
			zap.String("material_id", order.MaterialID),
		)
	}
	return result, nil
}

// WorkOrdersForDate lists the day's work orders, oldest first.
func (s *ConsumptionService) WorkOrdersForDate(ctx context.Context, date string) ([]ledger.WorkOrder, error) {
	if err := ledger.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.orders.FindByDate(ctx, date)
}

// AllWorkOrders lists every recorded work order, oldest first.
func (s *ConsumptionService) AllWorkOrders(ctx context.Context) ([]ledger.WorkOrder, error) {
	return s.orders.FindAll(ctx)
}
