package model

import "time"

type CategorySummary struct {
	Category     string  `json:"category"`
	AveragePrice float64 `json:"average_price"`
	TotalRevenue float64 `json:"total_revenue"`
	ProductCount int     `json:"product_count"`
	TotalStock   int     `json:"total_stock"`
}

type PriceRangeBucket struct {
	PriceRange   string `json:"price_range"`
	ProductCount int    `json:"product_count"`
}

type LocationShare struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type ProductSales struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type TrendPoint struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Takings  float64 `json:"takings"`
}

// SaleRecord is one row of the sales-joined-products dataset the analytics
// queries work from. It is what gets cached between requests.
type SaleRecord struct {
	Product  string    `json:"product"`
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
}
