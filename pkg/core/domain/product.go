package domain

import (
	"encoding/json"
	"time"
)

// Product is an affiliate catalog entry
type Product struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	AffiliateURL string    `json:"affiliateUrl"`
	Category     string    `json:"category,omitempty"`
	Price        *float64  `json:"price,omitempty"` // USD, nil when not set
	IsActive     bool      `json:"isActive"`
	Clicks       int64     `json:"clicks"` // Maintained by the redirect endpoint only
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UnmarshalJSON applies the wire defaults: a product without isActive is active.
func (p *Product) UnmarshalJSON(data []byte) error {
	type wire Product
	w := wire{IsActive: true}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = Product(w)
	return nil
}

// ProductInput is the create/update body: every editable field, no id or clicks.
type ProductInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	AffiliateURL string   `json:"affiliateUrl"`
	Category     string   `json:"category"`
	Price        *float64 `json:"price,omitempty"`
	IsActive     bool     `json:"isActive"`
}

// UnmarshalJSON mirrors Product: isActive defaults to true when omitted.
func (in *ProductInput) UnmarshalJSON(data []byte) error {
	type wire ProductInput
	w := wire{IsActive: true}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*in = ProductInput(w)
	return nil
}

// Apply overwrites the editable fields of p with the input (full replacement).
func (in ProductInput) Apply(p *Product) {
	p.Title = in.Title
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.AffiliateURL = in.AffiliateURL
	p.Category = in.Category
	p.Price = in.Price
	p.IsActive = in.IsActive
}

// Float64 returns a pointer to v, for optional prices.
func Float64(v float64) *float64 {
	return &v
}
