package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/cache"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

const salesDatasetKey = "analytics:sales_join_products"

// tab20-style palette: locations get a stable color by first-seen order.
var locationPalette = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

type productSource interface {
	List(ctx context.Context) ([]model.Product, error)
}

type customerSource interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
}

type salesSource interface {
	JoinedWithProducts(ctx context.Context) ([]model.SaleRecord, error)
}

// AnalyticsService computes the reporting aggregations. The sales⋈products
// dataset is the expensive input, so it is cached; everything derived from
// it is cheap enough to recompute per request.
type AnalyticsService struct {
	products  productSource
	customers customerSource
	sales     salesSource
	cache     *cache.Cache
	now       func() time.Time
}

func NewAnalyticsService(products productSource, customers customerSource, sales salesSource, c *cache.Cache) *AnalyticsService {
	return &AnalyticsService{
		products:  products,
		customers: customers,
		sales:     sales,
		cache:     c,
		now:       time.Now,
	}
}

func (s *AnalyticsService) ProductsByCategory(ctx context.Context) ([]model.CategorySummary, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := map[string]*model.CategorySummary{}
	for _, p := range products {
		summary, ok := grouped[p.Category]
		if !ok {
			summary = &model.CategorySummary{Category: p.Category}
			grouped[p.Category] = summary
		}
		summary.TotalRevenue += p.Price
		summary.ProductCount++
		summary.TotalStock += p.StockQuantity
	}

	out := make([]model.CategorySummary, 0, len(grouped))
	for _, summary := range grouped {
		summary.AveragePrice = round2(summary.TotalRevenue / float64(summary.ProductCount))
		summary.TotalRevenue = round2(summary.TotalRevenue)
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })

	return out, nil
}

var priceRanges = []struct {
	label string
	upper float64
}{
	{"0-50", 50},
	{"50-100", 100},
	{"100-200", 200},
	{"200-500", 500},
	{"500-1000", 1000},
	{"1000+", math.Inf(1)},
}

func (s *AnalyticsService) ProductsByPriceRange(ctx context.Context) ([]model.PriceRangeBucket, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(priceRanges))
	for _, p := range products {
		for i, r := range priceRanges {
			if p.Price < r.upper {
				counts[i]++
				break
			}
		}
	}

	out := make([]model.PriceRangeBucket, 0, len(priceRanges))
	for i, r := range priceRanges {
		if counts[i] == 0 {
			continue
		}
		out = append(out, model.PriceRangeBucket{PriceRange: r.label, ProductCount: counts[i]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProductCount > out[j].ProductCount })

	return out, nil
}

func (s *AnalyticsService) CustomersByLocation(ctx context.Context) ([]model.LocationShare, error) {
	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return []model.LocationShare{}, nil
	}

	counts := map[string]int{}
	order := make([]string, 0)
	for _, c := range customers {
		label := capitalize(c.Location)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	total := float64(len(customers))
	out := make([]model.LocationShare, 0, len(order))
	for i, label := range order {
		out = append(out, model.LocationShare{
			Label: label,
			Value: round2(float64(counts[label]) / total * 100),
			Color: locationPalette[i%len(locationPalette)],
		})
	}

	return out, nil
}

func (s *AnalyticsService) TopSelledProducts(ctx context.Context) ([]model.ProductSales, error) {
	records, err := s.salesDataset(ctx)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	for _, rec := range records {
		totals[rec.Product] += rec.Quantity
	}

	out := make([]model.ProductSales, 0, len(totals))
	for product, quantity := range totals {
		out = append(out, model.ProductSales{Product: product, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Product < out[j].Product
	})

	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

// Trend reports per-month takings by category for the current year, ordered
// by month.
func (s *AnalyticsService) Trend(ctx context.Context) ([]model.TrendPoint, error) {
	records, err := s.salesDataset(ctx)
	if err != nil {
		return nil, err
	}

	currentYear := s.now().UTC().Year()
	out := make([]model.TrendPoint, 0)
	for _, rec := range records {
		if rec.Date.UTC().Year() != currentYear {
			continue
		}
		out = append(out, model.TrendPoint{
			Date:     rec.Date.UTC().Format("2006-01"),
			Category: rec.Category,
			Takings:  round2(rec.Price * float64(rec.Quantity)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out, nil
}

func (s *AnalyticsService) salesDataset(ctx context.Context) ([]model.SaleRecord, error) {
	var cached []model.SaleRecord
	found, err := s.cache.GetJSON(ctx, salesDatasetKey, &cached)
	if err != nil {
		// Cache trouble must not take analytics down.
		slog.Warn("analytics cache read failed", "error", err)
	}
	if found {
		return cached, nil
	}

	records, err := s.sales.JoinedWithProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales dataset: %w", err)
	}

	if err := s.cache.SetJSON(ctx, salesDatasetKey, records); err != nil {
		slog.Warn("analytics cache write failed", "error", err)
	}
	return records, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
