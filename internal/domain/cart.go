package domain

// CartLine is one product line in the active cart. At most one line exists
// per (ProductID, StoreID) pair; adding the same product again increments
// the existing line's quantity.
type CartLine struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	StoreID        string `json:"storeId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	ImageURL       string `json:"image,omitempty"`
	StoreName      string `json:"storeName"`
}

// TotalCents is the line total: unit price times quantity.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// StoreGroup is the portion of a cart belonging to one store.
type StoreGroup struct {
	StoreID string     `json:"storeId"`
	Lines   []CartLine `json:"lines"`
}

// GroupByStore partitions lines by store. Groups appear in first-seen-store
// order and lines keep their original order within each group. The cart
// store and the order aggregator both rely on this exact partitioning.
func GroupByStore(lines []CartLine) []StoreGroup {
	index := make(map[string]int, len(lines))
	var groups []StoreGroup
	for _, line := range lines {
		i, ok := index[line.StoreID]
		if !ok {
			i = len(groups)
			index[line.StoreID] = i
			groups = append(groups, StoreGroup{StoreID: line.StoreID})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}
