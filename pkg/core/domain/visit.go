package domain

import "time"

// Click represents one pass through a product's redirect endpoint
type Click struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Referer   string    `json:"referer"`
	UserAgent string    `json:"user_agent"`
	IPHash    string    `json:"ip_hash"` // Anonymized IP
	CreatedAt time.Time `json:"created_at"`
}
