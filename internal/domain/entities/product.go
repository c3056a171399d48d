package entities

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategoryIceCream ProductCategory = "ice-cream"
	CategoryBars     ProductCategory = "bars"
	CategoryMiniCups ProductCategory = "mini-cups"
	CategoryNonDairy ProductCategory = "non-dairy"
	CategoryCakes    ProductCategory = "cakes"
)

// Product represents a catalog product. The catalog is loaded once at startup
// and never mutated afterwards.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Ingredients []string        `json:"ingredients"`
	Nutrition   Nutrition       `json:"nutrition"`
	Tags        []string        `json:"tags,omitempty"`
	Available   bool            `json:"available"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Protein  float64 `json:"protein"`
}
