package domain

import "time"

// SubOrderStatus is the per-store delivery state machine. Transitions are
// forward-only: pending → confirmed → preparing → out_for_delivery →
// delivered. No cancellation path is modeled.
type SubOrderStatus string

const (
	SubOrderPending        SubOrderStatus = "pending"
	SubOrderConfirmed      SubOrderStatus = "confirmed"
	SubOrderPreparing      SubOrderStatus = "preparing"
	SubOrderOutForDelivery SubOrderStatus = "out_for_delivery"
	SubOrderDelivered      SubOrderStatus = "delivered"
)

// Valid reports whether s is a known sub-order status.
func (s SubOrderStatus) Valid() bool {
	switch s {
	case SubOrderPending, SubOrderConfirmed, SubOrderPreparing, SubOrderOutForDelivery, SubOrderDelivered:
		return true
	}
	return false
}

// MasterOrderStatus is driven externally and independently of the
// sub-order statuses.
type MasterOrderStatus string

const (
	MasterOrderPending    MasterOrderStatus = "pending"
	MasterOrderProcessing MasterOrderStatus = "processing"
	MasterOrderCompleted  MasterOrderStatus = "completed"
)

// Valid reports whether s is a known master-order status.
func (s MasterOrderStatus) Valid() bool {
	switch s {
	case MasterOrderPending, MasterOrderProcessing, MasterOrderCompleted:
		return true
	}
	return false
}

// SubOrder is the portion of a checkout destined for one store. Lines are
// snapshots taken at checkout time; later cart mutation cannot reach them.
type SubOrder struct {
	ID               string         `json:"id"`
	StoreID          string         `json:"storeId"`
	StoreName        string         `json:"storeName"`
	Lines            []CartLine     `json:"lines"`
	SubtotalCents    int64          `json:"subtotalCents"`
	DeliveryFeeCents int64          `json:"deliveryFeeCents"`
	TotalCents       int64          `json:"totalCents"`
	Status           SubOrderStatus `json:"status"`
	ParentOrderID    string         `json:"parentOrderId"`
}

// MasterOrder aggregates one checkout: one SubOrder per distinct store in
// the originating cart snapshot. It exclusively owns its SubOrders.
type MasterOrder struct {
	ID               string            `json:"id"`
	SubOrders        []SubOrder        `json:"subOrders"`
	TotalAmountCents int64             `json:"totalAmountCents"`
	Status           MasterOrderStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
}
