package order

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/internal/domain"
)

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

type feeByStore map[string]int64

func (f feeByStore) DeliveryFeeCents(storeID string) int64 {
	if fee, ok := f[storeID]; ok {
		return fee
	}
	return 599
}

func snapshot() []domain.CartLine {
	return []domain.CartLine{
		{ID: "l1", ProductID: "p1", StoreID: "A", Name: "Pizza Calabresa", UnitPriceCents: 1000, Quantity: 2, StoreName: "Pizzaria Bella Vista"},
		{ID: "l2", ProductID: "p3", StoreID: "B", Name: "Açaí 500ml", UnitPriceCents: 500, Quantity: 1, StoreName: "Açaí do Morro"},
	}
}

func TestCreateOrderSplitsByStore(t *testing.T) {
	agg := NewAggregator(DefaultFee, sequentialIDs("ord"), fixedClock())

	master, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)
	require.Len(t, master.SubOrders, 2)

	a, b := master.SubOrders[0], master.SubOrders[1]
	assert.Equal(t, "A", a.StoreID)
	assert.Equal(t, "Pizzaria Bella Vista", a.StoreName)
	assert.Equal(t, int64(2000), a.SubtotalCents)
	assert.Equal(t, int64(599), a.DeliveryFeeCents)
	assert.Equal(t, int64(2599), a.TotalCents)
	assert.Equal(t, domain.SubOrderPending, a.Status)

	assert.Equal(t, "B", b.StoreID)
	assert.Equal(t, int64(500), b.SubtotalCents)
	assert.Equal(t, int64(1099), b.TotalCents)

	assert.Equal(t, int64(3698), master.TotalAmountCents)
	assert.Equal(t, domain.MasterOrderPending, master.Status)
	assert.Equal(t, fixedClock()(), master.CreatedAt)
}

func TestCreateOrderBackLinksSubOrders(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())

	master, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)
	for _, sub := range master.SubOrders {
		assert.Equal(t, master.ID, sub.ParentOrderID)
		assert.NotEqual(t, master.ID, sub.ID)
	}
}

func TestCreateOrderTotalsMatchSubOrders(t *testing.T) {
	agg := NewAggregator(feeByStore{"A": 599, "B": 399}, nil, nil)

	master, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	var sum int64
	for _, sub := range master.SubOrders {
		assert.Equal(t, sub.SubtotalCents+sub.DeliveryFeeCents, sub.TotalCents)
		sum += sub.TotalCents
	}
	assert.Equal(t, sum, master.TotalAmountCents)
	assert.Equal(t, int64(399), master.SubOrders[1].DeliveryFeeCents)
}

func TestCreateOrderOneSubOrderPerDistinctStore(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)
	lines := snapshot()
	lines = append(lines, domain.CartLine{ID: "l3", ProductID: "p2", StoreID: "A", Name: "Pizza Margherita", UnitPriceCents: 4290, Quantity: 1, StoreName: "Pizzaria Bella Vista"})

	master, err := agg.CreateOrder(lines)
	require.NoError(t, err)
	require.Len(t, master.SubOrders, 2)
	assert.Len(t, master.SubOrders[0].Lines, 2)
	assert.Len(t, master.SubOrders[1].Lines, 1)
}

func TestCreateOrderEmptySnapshot(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)

	prev, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	_, err = agg.CreateOrder(nil)
	require.True(t, errors.Is(err, domain.ErrEmptyCart))

	// The failed call must not disturb the current order.
	current := agg.Current()
	require.NotNil(t, current)
	assert.Equal(t, prev.ID, current.ID)
}

func TestCreateOrderCopiesLines(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)
	lines := snapshot()

	master, err := agg.CreateOrder(lines)
	require.NoError(t, err)

	lines[0].Quantity = 99
	assert.Equal(t, 2, agg.Current().SubOrders[0].Lines[0].Quantity)
	assert.Equal(t, 2, master.SubOrders[0].Lines[0].Quantity)
}

func TestCreateOrderReplacesCurrent(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())

	first, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)
	second, err := agg.CreateOrder(snapshot()[:1])
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, agg.Current().ID)
}

func TestUpdateSubOrderStatus(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())
	master, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	agg.UpdateSubOrderStatus(master.SubOrders[0].ID, domain.SubOrderConfirmed)

	current := agg.Current()
	assert.Equal(t, domain.SubOrderConfirmed, current.SubOrders[0].Status)
	assert.Equal(t, domain.SubOrderPending, current.SubOrders[1].Status)
}

func TestUpdateSubOrderStatusUnknownID(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())
	_, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	before := agg.Current()
	agg.UpdateSubOrderStatus("missing", domain.SubOrderDelivered)
	assert.Equal(t, before, agg.Current(), "unknown sub-order id must leave the order unchanged")
}

func TestUpdateSubOrderStatusWithoutOrder(t *testing.T) {
	agg := NewAggregator(nil, nil, nil)
	agg.UpdateSubOrderStatus("any", domain.SubOrderDelivered)
	assert.Nil(t, agg.Current())
}

func TestUpdateStatusIndependentOfSubOrders(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())
	master, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	for _, sub := range master.SubOrders {
		agg.UpdateSubOrderStatus(sub.ID, domain.SubOrderDelivered)
	}
	// Delivering every sub-order does not complete the master order.
	assert.Equal(t, domain.MasterOrderPending, agg.Current().Status)

	agg.UpdateStatus(domain.MasterOrderProcessing)
	assert.Equal(t, domain.MasterOrderProcessing, agg.Current().Status)
}

func TestCurrentReturnsCopy(t *testing.T) {
	agg := NewAggregator(nil, sequentialIDs("ord"), fixedClock())
	_, err := agg.CreateOrder(snapshot())
	require.NoError(t, err)

	agg.Current().SubOrders[0].Status = domain.SubOrderDelivered
	assert.Equal(t, domain.SubOrderPending, agg.Current().SubOrders[0].Status)
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, domain.SubOrderOutForDelivery.Valid())
	assert.False(t, domain.SubOrderStatus("cancelled").Valid())
	assert.True(t, domain.MasterOrderCompleted.Valid())
	assert.False(t, domain.MasterOrderStatus("archived").Valid())
}
