package orders

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/application/services/inventory"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

// productNames is the fixed catalog products are cyclically named from
var productNames = []string{
	"Rice", "Pasta", "Flour", "Sugar", "Salt",
	"Sunflower Oil", "Tea", "Coffee", "Biscuits", "Chocolate",
	"Canned Meat", "Canned Fish", "Juice", "Bottled Water", "Milk",
}

// Generator produces randomized products, stores and daily order demand.
// Demand is biased toward discounted stock. All randomness routes through
// the injected random source.
type Generator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates an order generator using the given random source
func NewGenerator(rng *rand.Rand, logger *slog.Logger) *Generator {
	return &Generator{rng: rng, logger: logger}
}

// intBetween returns a uniformly random integer in [lo, hi]
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// GenerateProducts produces the configured number of products with
// randomized attributes. Initial stock is deliberately low, between one
// sixth and one third of capacity, so replenishment kicks in early.
func (g *Generator) GenerateProducts(cfg config.SimulationConfig, startDate time.Time) ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, cfg.ProductTypesCount)

	for i := 0; i < cfg.ProductTypesCount; i++ {
		name := productNames[i%len(productNames)]
		capacity := g.intBetween(cfg.MinProductCapacity, cfg.MaxProductCapacity)
		packageSize := g.intBetween(cfg.MinPackageSize, cfg.MaxPackageSize)
		initialStock := g.intBetween(capacity/6, capacity/3)
		basePrice := decimal.NewFromInt(int64(g.intBetween(cfg.MinProductPrice, cfg.MaxProductPrice)))
		expiryDays := g.intBetween(cfg.MinExpiryDays, cfg.MaxExpiryDays)
		threshold := capacity * cfg.ReorderThresholdPercentage / 100

		product, err := entities.NewProduct(
			entities.ProductID(i+1),
			name,
			fmt.Sprintf("Wholesale %s", name),
			basePrice,
			entities.Quantity(initialStock),
			entities.Quantity(capacity),
			entities.Quantity(packageSize),
			startDate.AddDate(0, 0, expiryDays),
			entities.Quantity(threshold),
		)
		if err != nil {
			return nil, fmt.Errorf("generate product %d: %w", i+1, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// GenerateStores produces the configured number of stores with synthesized
// reference data
func (g *Generator) GenerateStores(cfg config.SimulationConfig) ([]*entities.Store, error) {
	stores := make([]*entities.Store, 0, cfg.StoreCount)

	for i := 0; i < cfg.StoreCount; i++ {
		store, err := entities.NewStore(
			entities.StoreID(i+1),
			fmt.Sprintf("Store #%d", i+1),
			fmt.Sprintf("%d Market Street", g.intBetween(1, 99)),
			fmt.Sprintf("Manager %d", i+1),
		)
		if err != nil {
			return nil, fmt.Errorf("generate store %d: %w", i+1, err)
		}
		stores = append(stores, store)
	}

	return stores, nil
}

// GenerateRandomOrder builds one store order from the products currently in
// stock. When discounted products exist, the order preferentially draws from
// them with the configured probability, then fills remaining slots from the
// regular set. Shippable quantities are estimated immediately against current
// stock; they are re-verified at processing time. Returns nil when nothing
// orderable remains or the order ends up empty.
func (g *Generator) GenerateRandomOrder(
	store *entities.Store,
	products []*entities.Product,
	cfg config.SimulationConfig,
	date time.Time,
) *entities.Order {
	var available []*entities.Product
	for _, product := range products {
		if product.QuantityInStock > 0 {
			available = append(available, product)
		}
	}
	if len(available) == 0 {
		return nil
	}

	productsInOrder := g.intBetween(cfg.MinProductsPerOrder, cfg.MaxProductsPerOrder)
	if productsInOrder > len(available) {
		productsInOrder = len(available)
	}

	var discounted, regular []*entities.Product
	for _, product := range available {
		if product.IsDiscounted() {
			discounted = append(discounted, product)
		} else {
			regular = append(regular, product)
		}
	}

	preferDiscounted := len(discounted) > 0 &&
		g.rng.Float64() < cfg.DiscountedProductOrderProbability

	var selected []*entities.Product
	if preferDiscounted {
		discountCount := productsInOrder
		if discountCount > len(discounted) {
			discountCount = len(discounted)
		}
		for i := 0; i < discountCount; i++ {
			selected = appendUniqueProduct(selected, discounted[g.rng.IntN(len(discounted))])
		}

		remaining := productsInOrder - discountCount
		if remaining > 0 && len(regular) > 0 {
			for i := 0; i < remaining; i++ {
				selected = appendUniqueProduct(selected, regular[g.rng.IntN(len(regular))])
			}
		}
	} else {
		for i := 0; i < productsInOrder; i++ {
			selected = appendUniqueProduct(selected, available[g.rng.IntN(len(available))])
		}
	}

	order, err := entities.NewOrder(store.ID, date)
	if err != nil {
		g.logger.Warn("skipping order generation",
			slog.Int("store_id", int(store.ID)),
			slog.String("error", err.Error()))
		return nil
	}

	for _, product := range selected {
		packages := g.intBetween(cfg.MinPackagesPerProduct, cfg.MaxPackagesPerProduct)
		requested := entities.Quantity(packages) * product.PackageSize

		packagesToShip := inventory.CalculatePackagesToShip(product, requested)
		actual := packagesToShip * product.PackageSize
		if actual <= 0 {
			continue
		}

		order.AddItem(entities.OrderItem{
			ProductID:         product.ID,
			RequestedQuantity: requested,
			ActualQuantity:    actual,
			PackagesToShip:    packagesToShip,
		})
		itemTotal := product.CurrentPrice().Mul(decimal.NewFromInt(int64(actual)))
		order.TotalAmount = order.TotalAmount.Add(itemTotal)
	}

	if len(order.Items) == 0 || !order.TotalAmount.IsPositive() {
		return nil
	}
	return order
}

// GenerateDailyOrders lets each store independently place an order with the
// configured daily probability and collects the non-empty results
func (g *Generator) GenerateDailyOrders(
	stores []*entities.Store,
	products []*entities.Product,
	cfg config.SimulationConfig,
	date time.Time,
) []*entities.Order {
	var dailyOrders []*entities.Order

	for _, store := range stores {
		if g.rng.Float64() >= cfg.DailyOrderProbability {
			continue
		}
		if order := g.GenerateRandomOrder(store, products, cfg, date); order != nil {
			dailyOrders = append(dailyOrders, order)
		}
	}

	return dailyOrders
}

func appendUniqueProduct(selected []*entities.Product, candidate *entities.Product) []*entities.Product {
	for _, product := range selected {
		if product.ID == candidate.ID {
			return selected
		}
	}
	return append(selected, candidate)
}
