package domain

// Store is a marketplace storefront entry.
type Store struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Rating           float64 `json:"rating"`
	DeliveryTime     string  `json:"deliveryTime"`
	DeliveryFeeCents int64   `json:"deliveryFeeCents"`
	ImageURL         string  `json:"image,omitempty"`
	Open             bool    `json:"isOpen"`
	Featured         bool    `json:"featured"`
}

// Product is a catalog item offered by one store.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"priceCents"`
	ImageURL   string  `json:"image,omitempty"`
	Rating     float64 `json:"rating"`
	StoreID    string  `json:"storeId"`
	StoreName  string  `json:"storeName"`
	Category   string  `json:"category"`
}
