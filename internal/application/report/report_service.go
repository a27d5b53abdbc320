package report

import (
	"context"
	"sort"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/ledger"
	"go.uber.org/zap"
)

// MaterialSummary is one row of the weekly report: per-material totals and
// period boundary stocks over an inclusive date range.
type MaterialSummary struct {
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name"`
	TotalStockIn int    `json:"total_stock_in"`
	TotalUsed    int    `json:"total_used"`
	InitialStock int    `json:"initial_stock"`
	FinalStock   int    `json:"final_stock"`
}

// ReportService reduces daily records over a date range into per-material
// summaries. It is a pure read side: calling it repeatedly with identical
// inputs and no intervening writes yields identical output.
type ReportService struct {
	catalog *catalog.Catalog
	daily   ledger.DailyRecordRepository
	logger  *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(cat *catalog.Catalog, daily ledger.DailyRecordRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		catalog: cat,
		daily:   daily,
		logger:  logger,
	}
}

// WeeklyReport aggregates records with start <= date <= end into one
// summary per catalog material, in catalog order. InitialStock is the
// initial of the earliest record in the selection, FinalStock the final
// of the latest; both are zero for an empty selection.
func (s *ReportService) WeeklyReport(ctx context.Context, start, end string) ([]MaterialSummary, error) {
	if err := ledger.ValidateDate(start); err != nil {
		return nil, err
	}
	if err := ledger.ValidateDate(end); err != nil {
		return nil, err
	}

	records, err := s.daily.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byMaterial := make(map[string][]ledger.DailyRecord)
	for _, r := range records {
		byMaterial[r.MaterialID] = append(byMaterial[r.MaterialID], r)
	}

	summaries := make([]MaterialSummary, 0, s.catalog.Len())
	for _, mat := range s.catalog.Materials() {
		selection := byMaterial[mat.ID]
		sort.SliceStable(selection, func(i, j int) bool {
			return selection[i].Date < selection[j].Date
		})

		summary := MaterialSummary{
			MaterialID:   mat.ID,
			MaterialName: mat.Name,
		}
		for _, r := range selection {
			summary.TotalStockIn += r.StockIn
			summary.TotalUsed += r.Used
		}
		if len(selection) > 0 {
			summary.InitialStock = selection[0].Initial
			summary.FinalStock = selection[len(selection)-1].Final()
		}
		summaries = append(summaries, summary)
	}

	s.logger.Debug("Weekly report computed",
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("records", len(records)),
	)
	return summaries, nil
}
