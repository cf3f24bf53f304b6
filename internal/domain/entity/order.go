package entity

import "time"

// Order statuses. An order starts as pending and moves forward through
// the fulfillment pipeline; cancelled is terminal from any state except
// delivered.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is a purchase made by a user. TotalAmount is computed from the
// item prices at creation time and never recalculated afterwards.
type Order struct {
	ID          string
	UserID      string
	TotalAmount float64
	Status      string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is a single line of an order. Price is the unit price of the
// item captured when the order was placed.
type OrderItem struct {
	ID       string
	OrderID  string
	ItemID   string
	Quantity int
	Price    float64
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Validate checks the invariants that must hold for a persisted order.
func (o *Order) Validate() error {
	if o.UserID == "" {
		return ErrMissingUserID
	}
	if !ValidOrderStatus(o.Status) {
		return ErrInvalidOrderStatus
	}
	if err := ValidateAmount(o.TotalAmount); err != nil {
		return err
	}
	for i := range o.Items {
		if err := o.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the invariants that must hold for an order line.
func (oi *OrderItem) Validate() error {
	if oi.ItemID == "" {
		return ErrMissingItemID
	}
	if err := ValidateQuantity(oi.Quantity); err != nil {
		return err
	}
	return ValidatePrice(oi.Price)
}
