package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/cache"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

type fakeProducts struct {
	products []model.Product
}

func (f *fakeProducts) List(_ context.Context) ([]model.Product, error) {
	return f.products, nil
}

type fakeCustomers struct {
	customers []model.Customer
}

func (f *fakeCustomers) ListAll(_ context.Context) ([]model.Customer, error) {
	return f.customers, nil
}

type fakeSales struct {
	records []model.SaleRecord
	calls   int
}

func (f *fakeSales) JoinedWithProducts(_ context.Context) ([]model.SaleRecord, error) {
	f.calls++
	return f.records, nil
}

func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestProductsByCategory(t *testing.T) {
	svc := NewAnalyticsService(&fakeProducts{products: []model.Product{
		{Name: "Laptop", Price: 1000, Category: "Technology", StockQuantity: 5},
		{Name: "Tablet", Price: 500, Category: "Technology", StockQuantity: 3},
		{Name: "Lamp", Price: 30, Category: "Home", StockQuantity: 10},
	}}, nil, nil, nil)

	out, err := svc.ProductsByCategory(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.CategorySummary{
		{Category: "Home", AveragePrice: 30, TotalRevenue: 30, ProductCount: 1, TotalStock: 10},
		{Category: "Technology", AveragePrice: 750, TotalRevenue: 1500, ProductCount: 2, TotalStock: 8},
	}, out)
}

func TestProductsByPriceRange(t *testing.T) {
	svc := NewAnalyticsService(&fakeProducts{products: []model.Product{
		{Price: 10}, {Price: 49.99}, {Price: 50}, {Price: 120}, {Price: 2500},
	}}, nil, nil, nil)

	out, err := svc.ProductsByPriceRange(context.Background())
	require.NoError(t, err)
	// Empty buckets are omitted; ties keep bin order.
	require.Equal(t, []model.PriceRangeBucket{
		{PriceRange: "0-50", ProductCount: 2},
		{PriceRange: "50-100", ProductCount: 1},
		{PriceRange: "100-200", ProductCount: 1},
		{PriceRange: "1000+", ProductCount: 1},
	}, out)
}

func TestCustomersByLocation(t *testing.T) {
	svc := NewAnalyticsService(nil, &fakeCustomers{customers: []model.Customer{
		{Location: "italy"}, {Location: "Italy"}, {Location: "france"}, {Location: "ITALY"},
	}}, nil, nil)

	out, err := svc.CustomersByLocation(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.LocationShare{
		{Label: "Italy", Value: 75, Color: "#1f77b4"},
		{Label: "France", Value: 25, Color: "#aec7e8"},
	}, out)
}

func TestCustomersByLocationEmpty(t *testing.T) {
	svc := NewAnalyticsService(nil, &fakeCustomers{}, nil, nil)

	out, err := svc.CustomersByLocation(context.Background())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestTopSelledProducts(t *testing.T) {
	sales := &fakeSales{records: []model.SaleRecord{
		{Product: "Laptop", Quantity: 3},
		{Product: "Laptop", Quantity: 4},
		{Product: "Tablet", Quantity: 5},
		{Product: "Lamp", Quantity: 2},
		{Product: "Chair", Quantity: 2},
		{Product: "Hat", Quantity: 1},
		{Product: "Shoes", Quantity: 1},
	}}
	svc := NewAnalyticsService(nil, nil, sales, nil)

	out, err := svc.TopSelledProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 5)
	require.Equal(t, model.ProductSales{Product: "Laptop", Quantity: 7}, out[0])
	require.Equal(t, model.ProductSales{Product: "Tablet", Quantity: 5}, out[1])
}

func TestTrendFiltersCurrentYear(t *testing.T) {
	sales := &fakeSales{records: []model.SaleRecord{
		{Product: "Laptop", Category: "Technology", Price: 100, Quantity: 2,
			Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{Product: "Lamp", Category: "Home", Price: 30, Quantity: 1,
			Date: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)},
		{Product: "Tablet", Category: "Technology", Price: 50, Quantity: 3,
			Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewAnalyticsService(nil, nil, sales, nil)
	svc.now = fixedTime(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	out, err := svc.Trend(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.TrendPoint{
		{Date: "2026-01", Category: "Technology", Takings: 150},
		{Date: "2026-03", Category: "Technology", Takings: 200},
	}, out)
}

func TestSalesDatasetIsCached(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	c, err := cache.New(ctx, server.Addr(), 10*time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	sales := &fakeSales{records: []model.SaleRecord{
		{Product: "Laptop", Quantity: 3, Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewAnalyticsService(nil, nil, sales, c)

	_, err = svc.TopSelledProducts(ctx)
	require.NoError(t, err)
	_, err = svc.TopSelledProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sales.calls)

	// After the TTL elapses the dataset is fetched again.
	server.FastForward(11 * time.Minute)
	_, err = svc.TopSelledProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, sales.calls)
}
