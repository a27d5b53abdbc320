package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDailyRepo struct {
	records []ledger.DailyRecord
}

func (s *stubDailyRepo) FindByID(ctx context.Context, id string) (*ledger.DailyRecord, error) {
	return nil, shared.ErrNotFound
}

func (s *stubDailyRepo) FindByDateAndMaterial(ctx context.Context, date, materialID string) (*ledger.DailyRecord, error) {
	return nil, shared.ErrNotFound
}

func (s *stubDailyRepo) FindByDate(ctx context.Context, date string) ([]ledger.DailyRecord, error) {
	return nil, nil
}

func (s *stubDailyRepo) FindByDateRange(ctx context.Context, start, end string) ([]ledger.DailyRecord, error) {
	var out []ledger.DailyRecord
	for _, r := range s.records {
		if r.Date >= start && r.Date <= end {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubDailyRepo) ExistsForDate(ctx context.Context, date string) (bool, error) {
	return false, nil
}

func (s *stubDailyRepo) LatestDateBefore(ctx context.Context, date string) (string, error) {
	return "", nil
}

func (s *stubDailyRepo) Save(ctx context.Context, record *ledger.DailyRecord) error { return nil }

func (s *stubDailyRepo) SaveAll(ctx context.Context, records []*ledger.DailyRecord) error {
	return nil
}

func record(t *testing.T, date, materialID string, initial, stockIn, used int) ledger.DailyRecord {
	t.Helper()
	r, err := ledger.NewDailyRecord(date, materialID, initial)
	require.NoError(t, err)
	require.NoError(t, r.SetField(ledger.FieldStockIn, stockIn))
	if used > 0 {
		require.NoError(t, r.ApplyConsumption(used))
	}
	return *r
}

func reportFixture(t *testing.T, records ...ledger.DailyRecord) *ReportService {
	t.Helper()
	cat, err := catalog.NewCatalog([]catalog.Material{
		{ID: "alca-branca", Name: "Alça Branca"},
		{ID: "parafuso", Name: "Parafuso"},
	})
	require.NoError(t, err)
	return NewReportService(cat, &stubDailyRepo{records: records}, zap.NewNop())
}

func TestReportService_WeeklyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("worked example across two days", func(t *testing.T) {
		// Day one: stockIn=10, used=3 -> final 7. Day two opened with initial=7.
		svc := reportFixture(t,
			record(t, "2024-01-01", "alca-branca", 0, 10, 3),
			record(t, "2024-01-02", "alca-branca", 7, 0, 0),
		)

		summaries, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-02")
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		alca := summaries[0]
		assert.Equal(t, "Alça Branca", alca.MaterialName)
		assert.Equal(t, 0, alca.InitialStock)
		assert.Equal(t, 10, alca.TotalStockIn)
		assert.Equal(t, 3, alca.TotalUsed)
		assert.Equal(t, 7, alca.FinalStock)

		parafuso := summaries[1]
		assert.Equal(t, 0, parafuso.TotalStockIn)
		assert.Equal(t, 0, parafuso.FinalStock)
	})

	t.Run("output follows catalog order, not data order", func(t *testing.T) {
		svc := reportFixture(t,
			record(t, "2024-01-01", "parafuso", 0, 1, 0),
			record(t, "2024-01-01", "alca-branca", 0, 2, 0),
		)

		summaries, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, "alca-branca", summaries[0].MaterialID)
		assert.Equal(t, "parafuso", summaries[1].MaterialID)
	})

	t.Run("records outside the range are excluded", func(t *testing.T) {
		svc := reportFixture(t,
			record(t, "2024-01-01", "parafuso", 0, 5, 0),
			record(t, "2024-01-08", "parafuso", 5, 2, 0),
		)

		summaries, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-07")
		require.NoError(t, err)
		assert.Equal(t, 5, summaries[1].TotalStockIn)
		assert.Equal(t, 5, summaries[1].FinalStock)
	})

	t.Run("boundary stocks come from earliest and latest records", func(t *testing.T) {
		svc := reportFixture(t,
			record(t, "2024-01-03", "parafuso", 9, 0, 1),
			record(t, "2024-01-01", "parafuso", 4, 0, 0),
			record(t, "2024-01-02", "parafuso", 6, 3, 0),
		)

		summaries, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-03")
		require.NoError(t, err)
		assert.Equal(t, 4, summaries[1].InitialStock)
		assert.Equal(t, 8, summaries[1].FinalStock) // 9 + 0 - 1
		assert.Equal(t, 3, summaries[1].TotalStockIn)
		assert.Equal(t, 1, summaries[1].TotalUsed)
	})

	t.Run("empty selection yields zero rows for every material", func(t *testing.T) {
		svc := reportFixture(t)

		summaries, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-07")
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		for _, s := range summaries {
			assert.Zero(t, s.InitialStock)
			assert.Zero(t, s.FinalStock)
			assert.Zero(t, s.TotalStockIn)
			assert.Zero(t, s.TotalUsed)
		}
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		svc := reportFixture(t,
			record(t, "2024-01-01", "alca-branca", 2, 3, 1),
			record(t, "2024-01-02", "parafuso", 0, 7, 2),
		)

		first, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-02")
		require.NoError(t, err)
		second, err := svc.WeeklyReport(ctx, "2024-01-01", "2024-01-02")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects malformed range bounds", func(t *testing.T) {
		svc := reportFixture(t)
		_, err := svc.WeeklyReport(ctx, "nope", "2024-01-07")
		assert.Error(t, err)
		_, err = svc.WeeklyReport(ctx, "2024-01-01", "nope")
		assert.Error(t, err)
	})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []MaterialSummary{
		{MaterialName: "Alça Branca", InitialStock: 0, TotalStockIn: 10, TotalUsed: 3, FinalStock: 7},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Material,Initial,Stock In,Used,Final", lines[0])
	assert.Equal(t, "Alça Branca,0,10,3,7", lines[1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, []MaterialSummary{
		{MaterialName: "Parafuso", InitialStock: 1, TotalStockIn: 2, TotalUsed: 3, FinalStock: 0},
	})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
	// XLSX files are zip archives.
	assert.Equal(t, "PK", buf.String()[:2])
}
