package inventory

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
	"github.com/stockmaster/warehouse/pkg/infrastructure/repositories/memory"
)

func newTestManager(seed uint64) *Manager {
	return NewManager(rand.New(rand.NewPCG(seed, seed)), logging.Discard())
}

func testProduct(id entities.ProductID, stock, packageSize entities.Quantity, expiry time.Time) *entities.Product {
	return &entities.Product{
		ID:               id,
		Name:             "Rice",
		BasePrice:        decimal.NewFromInt(100),
		QuantityInStock:  stock,
		MaxCapacity:      200,
		PackageSize:      packageSize,
		ExpiryDate:       expiry,
		ReorderThreshold: 50,
	}
}

func TestCheckExpiredProducts(t *testing.T) {
	manager := newTestManager(1)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	expired := testProduct(1, 30, 10, now) // expires today
	longGone := testProduct(2, 15, 10, now.AddDate(0, 0, -3))
	fresh := testProduct(3, 40, 10, now.AddDate(0, 0, 5))
	emptyExpired := testProduct(4, 0, 10, now)

	stats := &entities.WarehouseStatistics{}
	written := manager.CheckExpiredProducts(
		[]*entities.Product{expired, longGone, fresh, emptyExpired}, stats, now)

	assert.Equal(t, 2, written)
	assert.Equal(t, entities.Quantity(0), expired.QuantityInStock)
	assert.Equal(t, entities.Quantity(0), longGone.QuantityInStock)
	assert.Equal(t, entities.Quantity(40), fresh.QuantityInStock)

	// Loss is previous stock times base price: (30 + 15) * 100.
	assert.True(t, stats.TotalExpiredLoss.Equal(decimal.NewFromInt(4500)),
		"expected expired loss 4500, got %s", stats.TotalExpiredLoss)
}

func TestCheckInventoryLevels(t *testing.T) {
	manager := newTestManager(1)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	requests := memory.NewSupplyRequestRepository()

	low := testProduct(1, 20, 10, now.AddDate(0, 0, 10)) // at threshold 50 -> low
	ok := testProduct(2, 120, 10, now.AddDate(0, 0, 10))

	created := manager.CheckInventoryLevels([]*entities.Product{low, ok}, requests, now)

	require.Len(t, created, 1)
	request := created[0]
	assert.Equal(t, entities.ProductID(1), request.ProductID)
	assert.Equal(t, entities.Quantity(180), request.Quantity) // capacity 200 - stock 20
	assert.Equal(t, now, request.RequestDate)

	leadTime := request.ExpectedDeliveryDate.Sub(now).Hours() / 24
	assert.GreaterOrEqual(t, leadTime, 1.0)
	assert.LessOrEqual(t, leadTime, 5.0)

	// A second pass must not raise a duplicate while the request is open.
	again := manager.CheckInventoryLevels([]*entities.Product{low, ok}, requests, now)
	assert.Empty(t, again)
}

func TestCheckInventoryLevels_SkipsFullLowProduct(t *testing.T) {
	manager := newTestManager(1)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	requests := memory.NewSupplyRequestRepository()

	// Threshold above capacity means restocking is flagged but the computed
	// order quantity is zero.
	full := testProduct(1, 200, 10, now.AddDate(0, 0, 10))
	full.ReorderThreshold = 250

	created := manager.CheckInventoryLevels([]*entities.Product{full}, requests, now)
	assert.Empty(t, created)
	assert.Equal(t, 0, requests.Count())
}

func TestProcessDeliveries(t *testing.T) {
	manager := newTestManager(1)
	cfg := config.Default()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	product := testProduct(1, 20, 10, now.AddDate(0, 0, 1))
	product.DiscountPercentage = decimal.NewFromInt(50)

	products := memory.NewProductRepository(1)
	require.NoError(t, products.LoadProducts([]*entities.Product{product}))

	requests := memory.NewSupplyRequestRepository()
	due, err := entities.NewSupplyRequest(1, 180, now.AddDate(0, 0, -2), now)
	require.NoError(t, err)
	require.NoError(t, requests.AddRequest(due))

	fulfilled, err := manager.ProcessDeliveries(requests, products, cfg, now)
	require.NoError(t, err)
	require.Len(t, fulfilled, 1)

	assert.True(t, due.IsFulfilled)
	assert.Equal(t, entities.Quantity(200), product.QuantityInStock)
	assert.True(t, product.DiscountPercentage.IsZero(), "fresh stock must not be pre-discounted")

	freshDays := product.DaysUntilExpiry(now)
	assert.GreaterOrEqual(t, freshDays, cfg.MinExpiryDays)
	assert.LessOrEqual(t, freshDays, cfg.MaxExpiryDays)
}

func TestProcessDeliveries_IgnoresFutureRequests(t *testing.T) {
	manager := newTestManager(1)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	product := testProduct(1, 20, 10, now.AddDate(0, 0, 5))
	products := memory.NewProductRepository(1)
	require.NoError(t, products.LoadProducts([]*entities.Product{product}))

	requests := memory.NewSupplyRequestRepository()
	future, err := entities.NewSupplyRequest(1, 100, now, now.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.NoError(t, requests.AddRequest(future))

	fulfilled, err := manager.ProcessDeliveries(requests, products, config.Default(), now)
	require.NoError(t, err)
	assert.Empty(t, fulfilled)
	assert.False(t, future.IsFulfilled)
	assert.Equal(t, entities.Quantity(20), product.QuantityInStock)
}

func TestCalculatePackagesToShip(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 10)

	testCases := []struct {
		name      string
		stock     entities.Quantity
		pkgSize   entities.Quantity
		requested entities.Quantity
		expected  entities.Quantity
	}{
		{"request rounds up to whole packages", 100, 10, 35, 4},
		{"capped by available packages", 25, 10, 50, 2},
		{"zero stock", 0, 10, 50, 0},
		{"stock below one package", 9, 10, 10, 0},
		{"exact fit", 40, 10, 40, 4},
		{"single unit request", 100, 10, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			product := testProduct(1, tc.stock, tc.pkgSize, expiry)
			got := CalculatePackagesToShip(product, tc.requested)
			assert.Equal(t, tc.expected, got)
		})
	}

	assert.Equal(t, entities.Quantity(0), CalculatePackagesToShip(nil, 10))
}

func TestCalculatePackagesToShip_MonotonicInStock(t *testing.T) {
	expiry := time.Now().AddDate(0, 0, 10)
	previous := entities.Quantity(0)

	for stock := entities.Quantity(0); stock <= 120; stock++ {
		product := testProduct(1, stock, 10, expiry)
		got := CalculatePackagesToShip(product, 35)

		assert.GreaterOrEqual(t, got, previous, "result must not decrease as stock grows")
		assert.LessOrEqual(t, got, stock/10, "result must not exceed available packages")
		assert.LessOrEqual(t, got, entities.Quantity(4), "result must not exceed packages needed")
		previous = got
	}
}
