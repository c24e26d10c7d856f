package inventory

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// Manager implements the warehouse inventory rules: expiry write-off,
// low-stock detection, supply request creation and delivery fulfillment.
// All randomness (delivery lead times, fresh expiry dates) routes through
// the injected random source.
type Manager struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewManager creates an inventory manager using the given random source
func NewManager(rng *rand.Rand, logger *slog.Logger) *Manager {
	return &Manager{rng: rng, logger: logger}
}

// CheckExpiredProducts writes off all stock of expired products, adding
// stock times base price to the expired-loss statistic. Returns the number
// of products written off.
func (m *Manager) CheckExpiredProducts(
	products []*entities.Product,
	stats *entities.WarehouseStatistics,
	asOf time.Time,
) int {
	written := 0
	for _, product := range products {
		if product.QuantityInStock <= 0 || !product.IsExpired(asOf) {
			continue
		}

		loss := product.BasePrice.Mul(decimal.NewFromInt(int64(product.QuantityInStock)))
		stats.TotalExpiredLoss = stats.TotalExpiredLoss.Add(loss)
		m.logger.Debug("expired stock written off",
			slog.Int("product_id", int(product.ID)),
			slog.Int64("units", int64(product.QuantityInStock)),
			slog.String("loss", loss.String()))
		product.QuantityInStock = 0
		written++
	}
	return written
}

// CheckInventoryLevels raises a supply request for every product at or below
// its reorder threshold that has no open request yet. The requested quantity
// tops the product back up to capacity; the expected delivery is 1 to 5 days
// out. Returns the requests created.
func (m *Manager) CheckInventoryLevels(
	products []*entities.Product,
	requests repositories.SupplyRequestRepository,
	today time.Time,
) []*entities.SupplyRequest {
	var created []*entities.SupplyRequest

	for _, product := range products {
		if !product.NeedsRestocking() || requests.HasOpenRequest(product.ID) {
			continue
		}

		quantity := product.MaxCapacity - product.QuantityInStock
		if quantity <= 0 {
			continue
		}

		leadTime := m.rng.IntN(5) + 1
		request, err := entities.NewSupplyRequest(product.ID, quantity, today, today.AddDate(0, 0, leadTime))
		if err != nil {
			m.logger.Warn("skipping supply request",
				slog.Int("product_id", int(product.ID)),
				slog.String("error", err.Error()))
			continue
		}
		if err := requests.AddRequest(request); err != nil {
			m.logger.Warn("skipping supply request",
				slog.Int("product_id", int(product.ID)),
				slog.String("error", err.Error()))
			continue
		}

		created = append(created, request)
	}

	return created
}

// ProcessDeliveries fulfills every open request whose expected delivery date
// has arrived. Returns the requests fulfilled this pass.
func (m *Manager) ProcessDeliveries(
	requests repositories.SupplyRequestRepository,
	products repositories.ProductRepository,
	cfg config.SimulationConfig,
	today time.Time,
) ([]*entities.SupplyRequest, error) {
	open, err := requests.GetOpenRequests()
	if err != nil {
		return nil, fmt.Errorf("get open supply requests: %w", err)
	}

	var fulfilled []*entities.SupplyRequest
	for _, request := range open {
		if !request.IsDue(today) {
			continue
		}

		product, err := products.GetProduct(request.ProductID)
		if err != nil {
			m.logger.Warn("delivery for unknown product",
				slog.Int("request_id", int(request.ID)),
				slog.Int("product_id", int(request.ProductID)))
			continue
		}

		m.FulfillRequest(request, product, cfg, today)
		fulfilled = append(fulfilled, request)
	}

	return fulfilled, nil
}

// FulfillRequest applies the delivery side-effects of a single request: the
// quantity is added to stock, the request is marked fulfilled, the product
// gets a fresh randomized expiry date and its discount is reset to zero.
func (m *Manager) FulfillRequest(
	request *entities.SupplyRequest,
	product *entities.Product,
	cfg config.SimulationConfig,
	today time.Time,
) {
	product.QuantityInStock += request.Quantity
	request.IsFulfilled = true

	freshDays := m.rng.IntN(cfg.MaxExpiryDays-cfg.MinExpiryDays+1) + cfg.MinExpiryDays
	product.ExpiryDate = today.AddDate(0, 0, freshDays)
	product.DiscountPercentage = decimal.Zero

	m.logger.Debug("delivery received",
		slog.Int("request_id", int(request.ID)),
		slog.Int("product_id", int(product.ID)),
		slog.Int64("units", int64(request.Quantity)),
		slog.Int("fresh_expiry_days", freshDays))
}

// CalculatePackagesToShip returns how many whole packages of the product can
// be shipped against the requested unit quantity: the smaller of the packages
// needed (requested quantity rounded up to whole packages) and the packages
// actually available (stock rounded down to whole packages).
func CalculatePackagesToShip(product *entities.Product, requestedQuantity entities.Quantity) entities.Quantity {
	if product == nil || product.QuantityInStock <= 0 {
		return 0
	}

	packagesNeeded := (requestedQuantity + product.PackageSize - 1) / product.PackageSize
	availablePackages := product.QuantityInStock / product.PackageSize

	if packagesNeeded < availablePackages {
		return packagesNeeded
	}
	return availablePackages
}
