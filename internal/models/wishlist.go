package models

import "time"

type Wishlist struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      *string        `json:"email,omitempty"`
	ShareToken string         `json:"shareToken"`
	Items      []WishlistItem `json:"items"`
	Lead       *LeadSummary   `json:"lead,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type WishlistItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}

// LeadSummary is the slim lead shape embedded in wishlist listings.
type LeadSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Score  int    `json:"score"`
}

type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Brand *Brand  `json:"brand,omitempty"`
}
