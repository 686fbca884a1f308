package catalog

import (
	"strings"

	"foodhub/internal/domain"
)

// Catalog is the read-only store/product listing backing the storefront.
// It also resolves per-store delivery fees for checkout.
type Catalog struct {
	stores      []domain.Store
	products    []domain.Product
	fallbackFee int64
}

// New builds a Catalog over the built-in marketplace data. fallbackFee is
// charged for stores the catalog does not know.
func New(fallbackFee int64) *Catalog {
	return &Catalog{
		stores:      seedStores(),
		products:    seedProducts(),
		fallbackFee: fallbackFee,
	}
}

// Stores lists stores, optionally filtered by category. An empty filter
// or "all" returns everything.
func (c *Catalog) Stores(category string) []domain.Store {
	if category == "" || strings.EqualFold(category, "all") {
		out := make([]domain.Store, len(c.stores))
		copy(out, c.stores)
		return out
	}
	var out []domain.Store
	for _, s := range c.stores {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// Store returns the store with the given id.
func (c *Catalog) Store(id string) (*domain.Store, error) {
	for _, s := range c.stores {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Products lists products, optionally filtered by store and/or category.
func (c *Catalog) Products(storeID, category string) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if storeID != "" && p.StoreID != storeID {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DeliveryFeeCents implements order.FeePolicy from the catalog's
// per-store fees, falling back to the configured default for unknown
// stores.
func (c *Catalog) DeliveryFeeCents(storeID string) int64 {
	for _, s := range c.stores {
		if s.ID == storeID {
			return s.DeliveryFeeCents
		}
	}
	return c.fallbackFee
}

func seedStores() []domain.Store {
	return []domain.Store{
		{
			ID:               "1",
			Name:             "Pizzaria Bella Vista",
			Category:         "Pizza",
			Rating:           4.8,
			DeliveryTime:     "25-35 min",
			DeliveryFeeCents: 599,
			ImageURL:         "/placeholder.svg",
			Open:             true,
			Featured:         true,
		},
		{
			ID:               "2",
			Name:             "Açaí do Morro",
			Category:         "Açaí",
			Rating:           4.6,
			DeliveryTime:     "15-25 min",
			DeliveryFeeCents: 399,
			ImageURL:         "/placeholder.svg",
			Open:             true,
			Featured:         false,
		},
		{
			ID:               "3",
			Name:             "Burguer House",
			Category:         "Hambúrguer",
			Rating:           4.7,
			DeliveryTime:     "30-40 min",
			DeliveryFeeCents: 499,
			ImageURL:         "/placeholder.svg",
			Open:             true,
			Featured:         true,
		},
		{
			ID:               "4",
			Name:             "Doces da Vovó",
			Category:         "Confeitaria",
			Rating:           4.9,
			DeliveryTime:     "20-30 min",
			DeliveryFeeCents: 699,
			ImageURL:         "/placeholder.svg",
			Open:             false,
			Featured:         false,
		},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:         "1",
			Name:       "Pizza Calabresa",
			PriceCents: 4590,
			ImageURL:   "/placeholder.svg",
			Rating:     4.8,
			StoreID:    "1",
			StoreName:  "Pizzaria Bella Vista",
			Category:   "Pizza",
		},
		{
			ID:         "2",
			Name:       "Pizza Margherita",
			PriceCents: 4290,
			ImageURL:   "/placeholder.svg",
			Rating:     4.7,
			StoreID:    "1",
			StoreName:  "Pizzaria Bella Vista",
			Category:   "Pizza",
		},
		{
			ID:         "3",
			Name:       "Açaí 500ml",
			PriceCents: 1890,
			ImageURL:   "/placeholder.svg",
			Rating:     4.6,
			StoreID:    "2",
			StoreName:  "Açaí do Morro",
			Category:   "Açaí",
		},
	}
}
