package handler

import (
	applidger "github.com/estoque/backend/internal/application/ledger"
	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/gin-gonic/gin"
)

// DailyHandler handles the daily stock ledger HTTP requests
type DailyHandler struct {
	BaseHandler
	balanceService *applidger.BalanceService
	catalog        *catalog.Catalog
}

// NewDailyHandler creates a new daily ledger handler
func NewDailyHandler(balanceService *applidger.BalanceService, cat *catalog.Catalog) *DailyHandler {
	return &DailyHandler{balanceService: balanceService, catalog: cat}
}

// DailyRecordResponse is the API representation of one ledger row. The
// balance and final stock are derived on the way out, never stored.
type DailyRecordResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name"`
	Initial      int    `json:"initial"`
	StockIn      int    `json:"stock_in"`
	Used         int    `json:"used"`
	Balance      int    `json:"balance"`
	Final        int    `json:"final"`
}

// UpdateFieldRequest is the body of a field edit
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=initial stockIn"`
	Value int    `json:"value"`
}

func (h *DailyHandler) toResponse(record *ledger.DailyRecord) DailyRecordResponse {
	name := record.MaterialID
	if material, ok := h.catalog.Get(record.MaterialID); ok {
		name = material.Name
	}
	return DailyRecordResponse{
		ID:           record.ID,
		Date:         record.Date,
		MaterialID:   record.MaterialID,
		MaterialName: name,
		Initial:      record.Initial,
		StockIn:      record.StockIn,
		Used:         record.Used,
		Balance:      record.Balance(),
		Final:        record.Final(),
	}
}

func (h *DailyHandler) toResponses(records []ledger.DailyRecord) []DailyRecordResponse {
	out := make([]DailyRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, h.toResponse(&records[i]))
	}
	return out
}

// OpenDay creates the day's records with carried-forward balances
func (h *DailyHandler) OpenDay(c *gin.Context) {
	records, err := h.balanceService.OpenDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, h.toResponses(records))
}

// GetDay returns the day's records in catalog order
func (h *DailyHandler) GetDay(c *gin.Context) {
	records, err := h.balanceService.RecordsForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.toResponses(records))
}

// UpdateField edits the initial or stockIn field of one record
func (h *DailyHandler) UpdateField(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Field must be one of: initial, stockIn")
		return
	}

	recordID := ledger.RecordID(c.Param("date"), c.Param("materialId"))
	record, err := h.balanceService.UpdateField(c.Request.Context(), recordID, ledger.Field(req.Field), req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, h.toResponse(record))
}

// RegisterRoutes registers the daily ledger routes
func (h *DailyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	days := rg.Group("/days")
	{
		days.POST("/:date/open", h.OpenDay)
		days.GET("/:date", h.GetDay)
		days.PATCH("/:date/materials/:materialId", h.UpdateField)
	}
}
