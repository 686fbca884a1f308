package order

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"foodhub/internal/domain"
)

// IDFunc produces order ids. Injectable so tests control id assignment.
type IDFunc func() string

// FeePolicy resolves the delivery fee charged by a store.
type FeePolicy interface {
	DeliveryFeeCents(storeID string) int64
}

// FixedFee charges the same fee for every store.
type FixedFee int64

// DeliveryFeeCents implements FeePolicy.
func (f FixedFee) DeliveryFeeCents(string) int64 { return int64(f) }

// DefaultFee matches the storefront's flat R$ 5,99 charge.
const DefaultFee = FixedFee(599)

// Aggregator converts cart snapshots into master orders and tracks the
// session's current order. Only one order is active at a time; a new
// checkout replaces the previous one.
type Aggregator struct {
	mu      sync.Mutex
	current *domain.MasterOrder
	fees    FeePolicy
	newID   IDFunc
	now     func() time.Time
}

// NewAggregator builds an Aggregator. Nil arguments fall back to the flat
// default fee, random UUIDs and the wall clock.
func NewAggregator(fees FeePolicy, newID IDFunc, now func() time.Time) *Aggregator {
	if fees == nil {
		fees = DefaultFee
	}
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{fees: fees, newID: newID, now: now}
}

// CreateOrder partitions snapshot by store and assembles a MasterOrder
// with one SubOrder per distinct store, in first-seen-store order. The
// lines are copied, so later mutation of the snapshot cannot reach the
// placed order. An empty snapshot fails with domain.ErrEmptyCart and
// leaves the previous current order untouched; the current order only
// changes once the new one is fully assembled.
func (a *Aggregator) CreateOrder(snapshot []domain.CartLine) (*domain.MasterOrder, error) {
	if len(snapshot) == 0 {
		return nil, domain.ErrEmptyCart
	}

	master := &domain.MasterOrder{
		ID:        a.newID(),
		Status:    domain.MasterOrderPending,
		CreatedAt: a.now(),
	}

	for _, group := range domain.GroupByStore(snapshot) {
		lines := make([]domain.CartLine, len(group.Lines))
		copy(lines, group.Lines)

		var subtotal int64
		for _, line := range lines {
			subtotal += line.TotalCents()
		}
		fee := a.fees.DeliveryFeeCents(group.StoreID)

		sub := domain.SubOrder{
			ID:               a.newID(),
			StoreID:          group.StoreID,
			StoreName:        lines[0].StoreName,
			Lines:            lines,
			SubtotalCents:    subtotal,
			DeliveryFeeCents: fee,
			TotalCents:       subtotal + fee,
			Status:           domain.SubOrderPending,
			ParentOrderID:    master.ID,
		}
		master.SubOrders = append(master.SubOrders, sub)
		master.TotalAmountCents += sub.TotalCents
	}

	a.mu.Lock()
	a.current = master
	a.mu.Unlock()

	return copyOrder(master), nil
}

// Current returns a copy of the session's current order, or nil if no
// checkout has happened yet.
func (a *Aggregator) Current() *domain.MasterOrder {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copyOrder(a.current)
}

// UpdateSubOrderStatus overwrites the status of the identified sub-order
// within the current order. No transition validation is applied; an
// unknown id or an absent current order is a silent no-op.
func (a *Aggregator) UpdateSubOrderStatus(subOrderID string, status domain.SubOrderStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return
	}
	for i := range a.current.SubOrders {
		if a.current.SubOrders[i].ID == subOrderID {
			a.current.SubOrders[i].Status = status
			return
		}
	}
}

// UpdateStatus drives the master-order state machine. It is independent
// of the sub-order statuses. No-op when no order has been placed.
func (a *Aggregator) UpdateStatus(status domain.MasterOrderStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return
	}
	a.current.Status = status
}

func copyOrder(src *domain.MasterOrder) *domain.MasterOrder {
	if src == nil {
		return nil
	}
	out := *src
	out.SubOrders = make([]domain.SubOrder, len(src.SubOrders))
	for i, sub := range src.SubOrders {
		lines := make([]domain.CartLine, len(sub.Lines))
		copy(lines, sub.Lines)
		sub.Lines = lines
		out.SubOrders[i] = sub
	}
	return &out
}
