package orders

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/infrastructure/logging"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)), logging.Discard())
}

func TestGenerateProducts_AttributesInRange(t *testing.T) {
	generator := newTestGenerator(42)
	cfg := config.Default()
	startDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	products, err := generator.GenerateProducts(cfg, startDate)
	require.NoError(t, err)
	require.Len(t, products, cfg.ProductTypesCount)

	for i, product := range products {
		assert.Equal(t, entities.ProductID(i+1), product.ID)
		assert.Equal(t, productNames[i%len(productNames)], product.Name)

		capacity := int(product.MaxCapacity)
		assert.GreaterOrEqual(t, capacity, cfg.MinProductCapacity)
		assert.LessOrEqual(t, capacity, cfg.MaxProductCapacity)

		assert.GreaterOrEqual(t, int(product.PackageSize), cfg.MinPackageSize)
		assert.LessOrEqual(t, int(product.PackageSize), cfg.MaxPackageSize)

		// Initial stock is deliberately low to exercise replenishment.
		assert.GreaterOrEqual(t, int(product.QuantityInStock), capacity/6)
		assert.LessOrEqual(t, int(product.QuantityInStock), capacity/3)

		price := product.BasePrice
		assert.True(t, price.GreaterThanOrEqual(decimal.NewFromInt(int64(cfg.MinProductPrice))))
		assert.True(t, price.LessThanOrEqual(decimal.NewFromInt(int64(cfg.MaxProductPrice))))

		days := product.DaysUntilExpiry(startDate)
		assert.GreaterOrEqual(t, days, cfg.MinExpiryDays)
		assert.LessOrEqual(t, days, cfg.MaxExpiryDays)

		assert.Equal(t, entities.Quantity(capacity*cfg.ReorderThresholdPercentage/100), product.ReorderThreshold)
		assert.True(t, product.DiscountPercentage.IsZero())
	}
}

func TestGenerateProducts_Deterministic(t *testing.T) {
	cfg := config.Default()
	startDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := newTestGenerator(7).GenerateProducts(cfg, startDate)
	require.NoError(t, err)
	second, err := newTestGenerator(7).GenerateProducts(cfg, startDate)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i], "same seed must generate identical products")
	}
}

func TestGenerateStores(t *testing.T) {
	generator := newTestGenerator(42)
	cfg := config.Default()
	cfg.StoreCount = 3

	stores, err := generator.GenerateStores(cfg)
	require.NoError(t, err)
	require.Len(t, stores, 3)

	for i, store := range stores {
		assert.Equal(t, entities.StoreID(i+1), store.ID)
		assert.NotEmpty(t, store.Name)
		assert.NotEmpty(t, store.Address)
		assert.NotEmpty(t, store.ContactPerson)
	}
}

func TestGenerateRandomOrder_NoStock(t *testing.T) {
	generator := newTestGenerator(42)
	cfg := config.Default()
	store, _ := entities.NewStore(1, "Store #1", "1 Market Street", "Manager 1")

	empty := &entities.Product{ID: 1, Name: "Rice", PackageSize: 10, MaxCapacity: 100,
		BasePrice: decimal.NewFromInt(50)}

	order := generator.GenerateRandomOrder(store, []*entities.Product{empty}, cfg, time.Now())
	assert.Nil(t, order, "no orderable stock must yield no order")
}

func TestGenerateRandomOrder_ItemArithmetic(t *testing.T) {
	generator := newTestGenerator(42)
	cfg := config.Default()
	store, _ := entities.NewStore(1, "Store #1", "1 Market Street", "Manager 1")
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	product := &entities.Product{
		ID: 1, Name: "Rice",
		BasePrice:       decimal.NewFromInt(50),
		QuantityInStock: 55,
		MaxCapacity:     200,
		PackageSize:     10,
		ExpiryDate:      date.AddDate(0, 0, 10),
	}

	order := generator.GenerateRandomOrder(store, []*entities.Product{product}, cfg, date)
	require.NotNil(t, order)
	require.NotEmpty(t, order.Items)

	for _, item := range order.Items {
		assert.Zero(t, item.RequestedQuantity%product.PackageSize,
			"requested quantity is whole packages")
		assert.Equal(t, item.PackagesToShip*product.PackageSize, item.ActualQuantity)
		assert.LessOrEqual(t, item.ActualQuantity, entities.Quantity(55),
			"estimate cannot exceed stock")
	}
	assert.True(t, order.TotalAmount.IsPositive())
	assert.False(t, order.IsProcessed)
	assert.Equal(t, entities.Quantity(55), product.QuantityInStock,
		"generation must not mutate stock")
}

func TestGenerateRandomOrder_PrefersDiscounted(t *testing.T) {
	generator := newTestGenerator(42)
	cfg := config.Default()
	cfg.DiscountedProductOrderProbability = 1.0
	cfg.MinProductsPerOrder = 1
	cfg.MaxProductsPerOrder = 1
	store, _ := entities.NewStore(1, "Store #1", "1 Market Street", "Manager 1")
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	discounted := &entities.Product{
		ID: 1, Name: "Rice",
		BasePrice:          decimal.NewFromInt(50),
		DiscountPercentage: decimal.NewFromInt(30),
		QuantityInStock:    100,
		MaxCapacity:        200,
		PackageSize:        10,
		ExpiryDate:         date.AddDate(0, 0, 2),
	}
	regular := &entities.Product{
		ID: 2, Name: "Pasta",
		BasePrice:       decimal.NewFromInt(80),
		QuantityInStock: 100,
		MaxCapacity:     200,
		PackageSize:     10,
		ExpiryDate:      date.AddDate(0, 0, 20),
	}

	// With probability 1 and a single slot, every order picks the discounted product.
	for i := 0; i < 20; i++ {
		order := generator.GenerateRandomOrder(store, []*entities.Product{discounted, regular}, cfg, date)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, entities.ProductID(1), order.Items[0].ProductID)
	}
}

func TestGenerateDailyOrders_Probability(t *testing.T) {
	cfg := config.Default()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	generator := newTestGenerator(42)
	stores, err := generator.GenerateStores(cfg)
	require.NoError(t, err)
	products, err := generator.GenerateProducts(cfg, date.AddDate(0, 0, -1))
	require.NoError(t, err)

	cfg.DailyOrderProbability = 0
	assert.Empty(t, generator.GenerateDailyOrders(stores, products, cfg, date))

	// Every store attempts an order; a store may still come up empty when all
	// of its picks hold less stock than one package.
	cfg.DailyOrderProbability = 1
	orders := generator.GenerateDailyOrders(stores, products, cfg, date)
	assert.NotEmpty(t, orders)
	assert.LessOrEqual(t, len(orders), cfg.StoreCount)
	for _, order := range orders {
		assert.NotEmpty(t, order.Items)
		assert.True(t, order.TotalAmount.IsPositive())
	}
}
