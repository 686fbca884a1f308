package cart

import (
	"fmt"
	"testing"

	"foodhub/internal/domain"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("line-%d", n)
	}
}

func pizza(qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:      "p1",
		StoreID:        "s1",
		Name:           "Pizza Calabresa",
		UnitPriceCents: 4590,
		Quantity:       qty,
		StoreName:      "Pizzaria Bella Vista",
	}
}

func acai(qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:      "p3",
		StoreID:        "s2",
		Name:           "Açaí 500ml",
		UnitPriceCents: 1890,
		Quantity:       qty,
		StoreName:      "Açaí do Morro",
	}
}

func TestAddItemAssignsID(t *testing.T) {
	s := NewStore(sequentialIDs())
	got := s.AddItem(pizza(1))
	if got.ID != "line-1" {
		t.Fatalf("expected generated id line-1, got %q", got.ID)
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("expected 1 line, got %d", len(s.Lines()))
	}
}

func TestAddItemMergesSameProductAndStore(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(2))
	s.AddItem(pizza(3))
	s.AddItem(pizza(1))

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", lines[0].Quantity)
	}
	if lines[0].ID != "line-1" {
		t.Fatalf("merge must keep the original line id, got %q", lines[0].ID)
	}
}

func TestAddItemSameProductDifferentStore(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(1))
	other := pizza(1)
	other.StoreID = "s9"
	s.AddItem(other)
	if len(s.Lines()) != 2 {
		t.Fatalf("expected 2 lines for distinct stores, got %d", len(s.Lines()))
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore(sequentialIDs())
	added := s.AddItem(pizza(2))
	s.UpdateQuantity(added.ID, 5)
	if got := s.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := NewStore(sequentialIDs())
	added := s.AddItem(pizza(2))
	s.UpdateQuantity(added.ID, 0)
	if len(s.Lines()) != 0 {
		t.Fatalf("quantity <= 0 must remove the line")
	}

	added = s.AddItem(acai(1))
	s.UpdateQuantity(added.ID, -3)
	if len(s.Lines()) != 0 {
		t.Fatalf("negative quantity must remove the line")
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(2))
	s.UpdateQuantity("missing", 9)
	if got := s.Lines()[0].Quantity; got != 2 {
		t.Fatalf("unknown id must not change anything, got quantity %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewStore(sequentialIDs())
	first := s.AddItem(pizza(1))
	s.AddItem(acai(1))

	s.RemoveItem(first.ID)
	lines := s.Lines()
	if len(lines) != 1 || lines[0].ProductID != "p3" {
		t.Fatalf("expected only the açaí line to remain, got %+v", lines)
	}

	s.RemoveItem("missing")
	if len(s.Lines()) != 1 {
		t.Fatalf("removing an unknown id must be a no-op")
	}
}

func TestClear(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(1))
	s.AddItem(acai(2))
	s.Clear()
	if len(s.Lines()) != 0 || s.TotalItems() != 0 {
		t.Fatalf("clear must empty the cart")
	}
}

func TestTotals(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(2))
	s.AddItem(acai(3))

	if got := s.TotalItems(); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}
	want := int64(2*4590 + 3*1890)
	if got := s.TotalPriceCents(); got != want {
		t.Fatalf("expected total %d, got %d", want, got)
	}
}

func TestGroupByStorePartition(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(acai(1))
	s.AddItem(pizza(1))
	margherita := domain.CartLine{ProductID: "p2", StoreID: "s1", Name: "Pizza Margherita", UnitPriceCents: 4290, Quantity: 1, StoreName: "Pizzaria Bella Vista"}
	s.AddItem(margherita)

	groups := s.GroupByStore()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].StoreID != "s2" || groups[1].StoreID != "s1" {
		t.Fatalf("groups must follow first-seen-store order, got %q then %q", groups[0].StoreID, groups[1].StoreID)
	}
	if len(groups[0].Lines) != 1 || len(groups[1].Lines) != 2 {
		t.Fatalf("unexpected partition sizes: %d and %d", len(groups[0].Lines), len(groups[1].Lines))
	}
	if groups[1].Lines[0].ProductID != "p1" || groups[1].Lines[1].ProductID != "p2" {
		t.Fatalf("lines must keep insertion order within a group")
	}

	// Concatenating all groups reproduces the original line set.
	total := 0
	for _, g := range groups {
		total += len(g.Lines)
	}
	if total != len(s.Lines()) {
		t.Fatalf("every line must land in exactly one group")
	}
}

func TestLinesReturnsSnapshot(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(pizza(1))
	snap := s.Lines()
	snap[0].Quantity = 99
	if got := s.Lines()[0].Quantity; got != 1 {
		t.Fatalf("mutating a snapshot must not affect the store, got %d", got)
	}
}
