package handler

import (
	"net/http"
	"time"

	applidger "github.com/estoque/backend/internal/application/ledger"
	"github.com/estoque/backend/internal/domain/ledger"
	"github.com/estoque/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles work-order consumption HTTP requests
type WorkOrderHandler struct {
	BaseHandler
	consumptionService *applidger.ConsumptionService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(consumptionService *applidger.ConsumptionService) *WorkOrderHandler {
	return &WorkOrderHandler{consumptionService: consumptionService}
}

// CreateWorkOrderRequest is the work-order creation body
type CreateWorkOrderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Date        string `json:"date" binding:"required,ledgerdate"`
	MaterialID  string `json:"material_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	IsRequired  bool   `json:"is_required"`
}

// WorkOrderResponse is the API representation of a work order
type WorkOrderResponse struct {
	ID                 string    `json:"id"`
	OrderNumber        string    `json:"order_number"`
	Date               string    `json:"date"`
	MaterialID         string    `json:"material_id"`
	Quantity           int       `json:"quantity"`
	IsRequired         bool      `json:"is_required"`
	DailyUpdateApplied bool      `json:"daily_update_applied,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toWorkOrderResponse(order *ledger.WorkOrder, applied bool) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                 order.ID.String(),
		OrderNumber:        order.OrderNumber,
		Date:               order.Date,
		MaterialID:         order.MaterialID,
		Quantity:           order.Quantity,
		IsRequired:         order.IsRequired,
		DailyUpdateApplied: applied,
		CreatedAt:          order.CreatedAt,
	}
}

// Create records a consumption event. The order is always appended; when
// the target day is not open the response carries a warning instead of
// failing.
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.consumptionService.RecordConsumption(c.Request.Context(), applidger.RecordConsumptionInput{
		OrderNumber: req.OrderNumber,
		Date:        req.Date,
		MaterialID:  req.MaterialID,
		Quantity:    req.Quantity,
		IsRequired:  req.IsRequired,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	body := toWorkOrderResponse(result.WorkOrder, result.DailyUpdateApplied)
	if result.DailyUpdateApplied {
		c.JSON(http.StatusCreated, dto.NewSuccessResponse(body))
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponseWithWarning(body,
		"Day "+req.Date+" is not open; the work order was recorded but no daily balance was updated"))
}

// List returns work orders, optionally filtered to a single day
func (h *WorkOrderHandler) List(c *gin.Context) {
	var (
		orders []ledger.WorkOrder
		err    error
	)
	if date := c.Query("date"); date != "" {
		orders, err = h.consumptionService.WorkOrdersForDate(c.Request.Context(), date)
	} else {
		orders, err = h.consumptionService.AllWorkOrders(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]WorkOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toWorkOrderResponse(&orders[i], false))
	}
	h.Success(c, out)
}

// RegisterRoutes registers the work order routes
func (h *WorkOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/work-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
	}
}
