package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uuid.UUID
	OrderNumber string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Street  string
	City    string
	State   string
	Zip     string
	Country string

	Subtotal float64
	Total    float64
	Status   Status

	// Nil until the fulfillment provider accepts the draft order.
	// A nil value on a non-pending order means manual fulfillment.
	FulfillmentOrderID *int64

	CreatedAt time.Time
	Items     []LineItem
}

type LineItem struct {
	ID      uuid.UUID
	OrderID uuid.UUID

	ProductName string
	VariantName string

	// VariantID maps the item to a print-on-demand catalog variant.
	// Nil for items the provider does not fulfill (digital goods).
	VariantID *int64

	Quantity  int
	UnitPrice float64
}
