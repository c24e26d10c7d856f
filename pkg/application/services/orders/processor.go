package orders

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/application/services/inventory"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// Processor converts requested order quantities into shippable package
// counts, deducts stock and accrues revenue and loss statistics.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates an order processor
func NewProcessor(logger *slog.Logger) *Processor {
	return &Processor{logger: logger}
}

// ProcessOrder fulfills a single order against current stock. Processing an
// already-processed order is a no-op. Items whose product is missing or out
// of stock contribute nothing. Returns true when at least one item shipped;
// an order that ships nothing stays unprocessed so it can retry later.
func (p *Processor) ProcessOrder(
	order *entities.Order,
	products repositories.ProductRepository,
	stats *entities.WarehouseStatistics,
) bool {
	if order == nil || order.IsProcessed {
		return false
	}

	order.TotalAmount = decimal.Zero
	hasItemsToShip := false

	// Reset shipped quantities before recomputing against current stock.
	for i := range order.Items {
		order.Items[i].ActualQuantity = 0
		order.Items[i].PackagesToShip = 0
	}

	for i := range order.Items {
		item := &order.Items[i]

		product, err := products.GetProduct(item.ProductID)
		if err != nil || product.QuantityInStock <= 0 {
			continue
		}

		packagesToShip := inventory.CalculatePackagesToShip(product, item.RequestedQuantity)
		if packagesToShip == 0 {
			continue
		}

		item.PackagesToShip = packagesToShip
		item.ActualQuantity = packagesToShip * product.PackageSize

		product.QuantityInStock -= item.ActualQuantity

		itemTotal := product.CurrentPrice().Mul(decimal.NewFromInt(int64(item.ActualQuantity)))
		order.TotalAmount = order.TotalAmount.Add(itemTotal)
		hasItemsToShip = true

		stats.TotalProductsSold += item.ActualQuantity
		stats.TotalRevenue = stats.TotalRevenue.Add(itemTotal)

		if product.IsDiscounted() {
			markdown := product.BasePrice.Sub(product.CurrentPrice())
			discountLoss := markdown.Mul(decimal.NewFromInt(int64(item.ActualQuantity)))
			stats.TotalDiscountLoss = stats.TotalDiscountLoss.Add(discountLoss)
		}
	}

	if !hasItemsToShip {
		p.logger.Debug("order cannot ship any item, kept pending",
			slog.Int("order_id", int(order.ID)))
		return false
	}

	order.IsProcessed = true
	return true
}

// ProcessDailyOrders processes all unprocessed orders in order-date order
// (insertion order breaks ties) and returns the orders touched in this pass,
// processed or not according to each order's own outcome.
func (p *Processor) ProcessDailyOrders(
	orders repositories.OrderRepository,
	products repositories.ProductRepository,
	stats *entities.WarehouseStatistics,
) ([]*entities.Order, error) {
	unprocessed, err := orders.GetUnprocessedOrders()
	if err != nil {
		return nil, fmt.Errorf("get unprocessed orders: %w", err)
	}

	// The repository returns a fresh slice, so processing cannot disturb
	// the iteration.
	for _, order := range unprocessed {
		p.ProcessOrder(order, products, stats)
	}

	return unprocessed, nil
}

// CalculateOrderRevenue recomputes an order's total from its current shipped
// quantities and the current product prices. A read-only projection: neither
// stock nor statistics are touched.
func (p *Processor) CalculateOrderRevenue(
	order *entities.Order,
	products repositories.ProductRepository,
) decimal.Decimal {
	total := decimal.Zero
	if order == nil {
		return total
	}

	for _, item := range order.Items {
		if item.ActualQuantity <= 0 {
			continue
		}
		product, err := products.GetProduct(item.ProductID)
		if err != nil {
			continue
		}
		total = total.Add(product.CurrentPrice().Mul(decimal.NewFromInt(int64(item.ActualQuantity))))
	}

	return total
}
