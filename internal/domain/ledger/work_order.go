package ledger

import (
	"strings"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WorkOrder is an immutable consumption event (OS) tied to an external
// requisition. Orders are append-only: once created they are never edited
// or reversed by the ledger.
type WorkOrder struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"size:64;not null;index"`
	Date        string    `gorm:"column:order_date;size:10;not null;index"`
	MaterialID  string    `gorm:"size:64;not null;index"`
	Quantity    int       `gorm:"not null"`
	IsRequired  bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WorkOrder) TableName() string {
	return "work_orders"
}

// NewWorkOrder creates a validated work order.
func NewWorkOrder(orderNumber, date, materialID string, quantity int, isRequired bool) (*WorkOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if materialID == "" {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Material ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &WorkOrder{
		ID:          uuid.New(),
		OrderNumber: orderNumber,
		Date:        date,
		MaterialID:  materialID,
		Quantity:    quantity,
		IsRequired:  isRequired,
		CreatedAt:   time.Now(),
	}, nil
}
