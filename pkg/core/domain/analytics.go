package domain

// UncategorizedLabel groups products without a category in analytics
const UncategorizedLabel = "Uncategorized"

// Analytics is the admin overview derived from a product list
type Analytics struct {
	TotalProducts    int             `json:"totalProducts"`
	ActiveProducts   int             `json:"activeProducts"`
	InactiveProducts int             `json:"inactiveProducts"`
	TotalClicks      int64           `json:"totalClicks"`
	PerCategory      []CategoryStats `json:"perCategory"`
}

// CategoryStats aggregates one category
type CategoryStats struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Clicks int64  `json:"clicks"`
}
