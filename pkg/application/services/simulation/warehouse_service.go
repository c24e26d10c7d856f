package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/application/dto"
	"github.com/stockmaster/warehouse/pkg/application/services/inventory"
	"github.com/stockmaster/warehouse/pkg/application/services/orders"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
	"github.com/stockmaster/warehouse/pkg/domain/services"
	"github.com/stockmaster/warehouse/pkg/infrastructure/events"
	"github.com/stockmaster/warehouse/pkg/infrastructure/repositories/memory"
)

// WarehouseService orchestrates one simulation session: it owns the entity
// repositories, the random source and the per-run statistics, and drives the
// daily cycle over the inventory and order services. It is not safe for
// concurrent use; callers serialize access themselves.
type WarehouseService struct {
	cfg    config.SimulationConfig
	logger *slog.Logger
	rng    *Rand
	seed   uint64

	productRepo repositories.ProductRepository
	storeRepo   repositories.StoreRepository
	orderRepo   repositories.OrderRepository
	requestRepo repositories.SupplyRequestRepository

	inventory *inventory.Manager
	processor *orders.Processor
	generator *orders.Generator
	discounts *services.DiscountPolicy
	events    *events.InMemoryEventStore

	// Processed orders awaiting dispatch bookkeeping; grows over the run,
	// cleared only by Reset.
	pendingShipments []*entities.Order

	stats   entities.WarehouseStatistics
	summary entities.WarehouseSummary

	startDate   time.Time
	currentDate time.Time
	currentDay  int
	initialized bool
}

// New creates a simulation session starting today. The configuration is
// validated up front; a fixed seed makes the whole run reproducible.
func New(cfg config.SimulationConfig, seed uint64, logger *slog.Logger) (*WarehouseService, error) {
	return NewAt(cfg, seed, time.Now(), logger)
}

// NewAt creates a simulation session with an explicit start date
func NewAt(cfg config.SimulationConfig, seed uint64, startDate time.Time, logger *slog.Logger) (*WarehouseService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	rng := NewRand(seed)
	start := dateOnly(startDate)

	return &WarehouseService{
		cfg:         cfg,
		logger:      logger,
		rng:         rng,
		seed:        seed,
		productRepo: memory.NewProductRepository(cfg.ProductTypesCount),
		storeRepo:   memory.NewStoreRepository(cfg.StoreCount),
		orderRepo:   memory.NewOrderRepository(),
		requestRepo: memory.NewSupplyRequestRepository(),
		inventory:   inventory.NewManager(rng.Rand, logger),
		processor:   orders.NewProcessor(logger),
		generator:   orders.NewGenerator(rng.Rand, logger),
		discounts:   services.NewDiscountPolicy(cfg.DiscountDaysThreshold),
		events:      events.NewInMemoryEventStore(),
		startDate:   start,
		currentDate: start,
	}, nil
}

// Initialize loads the catalog and store reference data and arms the session
// at day zero. Both collections must be non-empty.
func (s *WarehouseService) Initialize(products []*entities.Product, stores []*entities.Store) error {
	if len(products) == 0 {
		return fmt.Errorf("%w: products cannot be empty", ErrInvalidArgument)
	}
	if len(stores) == 0 {
		return fmt.Errorf("%w: stores cannot be empty", ErrInvalidArgument)
	}

	s.productRepo.Clear()
	s.storeRepo.Clear()
	if err := s.productRepo.LoadProducts(products); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := s.storeRepo.LoadStores(stores); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	s.stats.Reset()
	s.refreshInventoryValue()
	s.refreshSummary()
	s.initialized = true

	s.logger.Info("warehouse initialized",
		slog.Int("products", s.productRepo.Count()),
		slog.Int("stores", s.storeRepo.Count()),
		slog.Time("start_date", s.startDate))
	return nil
}

// GenerateTestData seeds the session with randomized products and stores
// drawn from the session's own random source
func (s *WarehouseService) GenerateTestData() error {
	products, err := s.generator.GenerateProducts(s.cfg, s.startDate)
	if err != nil {
		return fmt.Errorf("generate products: %w", err)
	}
	stores, err := s.generator.GenerateStores(s.cfg)
	if err != nil {
		return fmt.Errorf("generate stores: %w", err)
	}
	return s.Initialize(products, stores)
}

// AdvanceDay runs one full daily cycle: deliveries, expiry write-off,
// automatic markdowns, order generation, order processing, replenishment
// checks and statistics. Returns ErrSimulationComplete once the configured
// day count has been reached; the session state is left untouched then.
func (s *WarehouseService) AdvanceDay(ctx context.Context) (*dto.DayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if s.currentDay >= s.cfg.SimulationDays {
		return nil, ErrSimulationComplete
	}

	s.currentDay++
	s.currentDate = s.currentDate.AddDate(0, 0, 1)

	result := &dto.DayResult{Day: s.currentDay, Date: s.currentDate}

	delivered, err := s.inventory.ProcessDeliveries(s.requestRepo, s.productRepo, s.cfg, s.currentDate)
	if err != nil {
		return nil, fmt.Errorf("process deliveries: %w", err)
	}
	result.DeliveriesReceived = len(delivered)
	for _, request := range delivered {
		s.emit(events.DeliveryReceivedEvent, events.SupplyStream, events.DeliveryReceived{Request: *request})
	}

	result.ProductsExpired = s.writeOffExpired()
	result.DiscountsApplied = s.applyAutomaticDiscounts()

	generated, err := s.generateOrdersFor(s.currentDate)
	if err != nil {
		return nil, err
	}
	result.OrdersGenerated = len(generated)

	processed, err := s.processUnprocessedOrders()
	if err != nil {
		return nil, err
	}
	result.OrdersProcessed = processed

	created := s.inventory.CheckInventoryLevels(s.mustProducts(), s.requestRepo, s.currentDate)
	result.SupplyRequestsCreated = len(created)
	for _, request := range created {
		s.emit(events.SupplyRequestedEvent, events.SupplyStream, events.SupplyRequested{Request: *request})
	}

	s.stats.CurrentDay = s.currentDay
	s.refreshInventoryValue()
	s.refreshSummary()

	s.emit(events.DayCompletedEvent, events.SimulationStream, events.DayCompleted{
		Day:             s.currentDay,
		OrdersGenerated: result.OrdersGenerated,
		OrdersProcessed: result.OrdersProcessed,
		UnitsSold:       s.stats.TotalProductsSold,
	})
	s.logger.Info("day completed",
		slog.Int("day", s.currentDay),
		slog.Int("deliveries", result.DeliveriesReceived),
		slog.Int("expired", result.ProductsExpired),
		slog.Int("discounts", result.DiscountsApplied),
		slog.Int("orders_generated", result.OrdersGenerated),
		slog.Int("orders_processed", result.OrdersProcessed),
		slog.Int("supply_requests", result.SupplyRequestsCreated))

	return result, nil
}

// AdvanceDays runs up to n daily cycles, stopping early without error when
// the simulation completes
func (s *WarehouseService) AdvanceDays(ctx context.Context, n int) ([]dto.DayResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", ErrInvalidArgument, n)
	}

	results := make([]dto.DayResult, 0, n)
	for i := 0; i < n; i++ {
		result, err := s.AdvanceDay(ctx)
		if err != nil {
			if err == ErrSimulationComplete {
				break
			}
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// Run advances the simulation to completion and returns the full report
func (s *WarehouseService) Run(ctx context.Context) (*dto.SimulationReport, error) {
	var days []dto.DayResult
	for !s.IsComplete() {
		result, err := s.AdvanceDay(ctx)
		if err != nil {
			if err == ErrSimulationComplete {
				break
			}
			return nil, err
		}
		days = append(days, *result)
	}

	return &dto.SimulationReport{
		DaysSimulated: s.currentDay,
		Days:          days,
		Statistics:    s.stats,
		Summary:       s.summary,
	}, nil
}

// GenerateDailyOrders generates the random store orders for the given day
// index (0 is the start date) without advancing the clock, appending them to
// the order book
func (s *WarehouseService) GenerateDailyOrders(dayIndex int) ([]*entities.Order, error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if dayIndex < 0 {
		return nil, fmt.Errorf("%w: day index cannot be negative, got %d", ErrInvalidArgument, dayIndex)
	}
	return s.generateOrdersFor(s.startDate.AddDate(0, 0, dayIndex))
}

// ProcessOrderByID processes a single order against current stock.
// Processing an already-processed order is a no-op.
func (s *WarehouseService) ProcessOrderByID(id entities.OrderID) error {
	order, err := s.orderRepo.GetOrder(id)
	if err != nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if order.IsProcessed {
		return nil
	}

	if s.processor.ProcessOrder(order, s.productRepo, &s.stats) {
		s.pendingShipments = append(s.pendingShipments, order)
		s.emit(events.OrderProcessedEvent, events.OrderStream, events.OrderProcessed{Order: *order})
	}

	s.refreshInventoryValue()
	s.refreshSummary()
	return nil
}

// FulfillSupplyRequestByID applies an early manual delivery for the given
// request: stock is topped up, the product gets a fresh expiry date and loses
// its markdown, and every still-unprocessed order is re-estimated against the
// new stock and prices. Fulfilling a fulfilled request is a no-op.
func (s *WarehouseService) FulfillSupplyRequestByID(id entities.RequestID) error {
	request, err := s.requestRepo.GetRequest(id)
	if err != nil {
		return fmt.Errorf("%w: supply request %d", ErrNotFound, id)
	}
	if request.IsFulfilled {
		return nil
	}
	product, err := s.productRepo.GetProduct(request.ProductID)
	if err != nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, request.ProductID)
	}

	s.inventory.FulfillRequest(request, product, s.cfg, s.currentDate)
	s.emit(events.DeliveryReceivedEvent, events.SupplyStream, events.DeliveryReceived{Request: *request})

	if err := s.reconcileUnprocessedOrders(); err != nil {
		return err
	}
	s.refreshInventoryValue()
	s.refreshSummary()
	return nil
}

// ApplyDiscount sets a manual markdown on a product. The percentage is
// clamped to [0, 100]; zero removes the markdown.
func (s *WarehouseService) ApplyDiscount(id entities.ProductID, percentage decimal.Decimal) error {
	product, err := s.productRepo.GetProduct(id)
	if err != nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	if percentage.IsNegative() {
		percentage = decimal.Zero
	} else if percentage.GreaterThan(decimal.NewFromInt(100)) {
		percentage = decimal.NewFromInt(100)
	}
	product.DiscountPercentage = percentage

	if percentage.IsPositive() {
		s.emit(events.ProductDiscountedEvent, events.ProductStream, events.ProductDiscounted{
			ProductID: product.ID,
			Rate:      percentage,
			DaysLeft:  product.DaysUntilExpiry(s.currentDate),
		})
	}
	s.refreshInventoryValue()
	return nil
}

// RemoveDiscount clears any markdown on a product
func (s *WarehouseService) RemoveDiscount(id entities.ProductID) error {
	return s.ApplyDiscount(id, decimal.Zero)
}

// Reset returns the session to its pre-initialization state. The random
// source keeps its position, so a reseeded replay needs a fresh session.
func (s *WarehouseService) Reset() {
	s.productRepo.Clear()
	s.storeRepo.Clear()
	s.orderRepo.Clear()
	s.requestRepo.Clear()
	s.events = events.NewInMemoryEventStore()
	s.pendingShipments = nil
	s.stats.Reset()
	s.summary = entities.WarehouseSummary{}
	s.currentDay = 0
	s.currentDate = s.startDate
	s.initialized = false
}

// Products returns all products in the catalog
func (s *WarehouseService) Products() ([]*entities.Product, error) {
	return s.productRepo.GetAllProducts()
}

// Product returns the product with the given id
func (s *WarehouseService) Product(id entities.ProductID) (*entities.Product, error) {
	product, err := s.productRepo.GetProduct(id)
	if err != nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return product, nil
}

// Stores returns all stores
func (s *WarehouseService) Stores() ([]*entities.Store, error) {
	return s.storeRepo.GetAllStores()
}

// Orders returns every order placed during the session
func (s *WarehouseService) Orders() ([]*entities.Order, error) {
	return s.orderRepo.GetAllOrders()
}

// TodayOrders returns the orders placed on the current simulation date
func (s *WarehouseService) TodayOrders() ([]*entities.Order, error) {
	all, err := s.orderRepo.GetAllOrders()
	if err != nil {
		return nil, err
	}

	var today []*entities.Order
	for _, order := range all {
		if dateOnly(order.OrderDate).Equal(s.currentDate) {
			today = append(today, order)
		}
	}
	return today, nil
}

// PendingShipments returns the processed orders awaiting dispatch bookkeeping
func (s *WarehouseService) PendingShipments() []*entities.Order {
	pending := make([]*entities.Order, len(s.pendingShipments))
	copy(pending, s.pendingShipments)
	return pending
}

// OpenSupplyRequests returns all unfulfilled supply requests
func (s *WarehouseService) OpenSupplyRequests() ([]*entities.SupplyRequest, error) {
	return s.requestRepo.GetOpenRequests()
}

// SupplyRequests returns every supply request raised during the session
func (s *WarehouseService) SupplyRequests() ([]*entities.SupplyRequest, error) {
	return s.requestRepo.GetAllRequests()
}

// ExpiringProducts returns in-stock products whose remaining shelf life is
// within the markdown window
func (s *WarehouseService) ExpiringProducts() ([]*entities.Product, error) {
	all, err := s.productRepo.GetAllProducts()
	if err != nil {
		return nil, err
	}

	var expiring []*entities.Product
	for _, product := range all {
		if product.QuantityInStock > 0 && s.discounts.InWindow(product.DaysUntilExpiry(s.currentDate)) {
			expiring = append(expiring, product)
		}
	}
	return expiring, nil
}

// LowStockProducts returns products at or below their reorder threshold
func (s *WarehouseService) LowStockProducts() ([]*entities.Product, error) {
	all, err := s.productRepo.GetAllProducts()
	if err != nil {
		return nil, err
	}

	var low []*entities.Product
	for _, product := range all {
		if product.NeedsRestocking() {
			low = append(low, product)
		}
	}
	return low, nil
}

// DiscountCandidates returns the markdown view of every currently discounted
// in-stock product
func (s *WarehouseService) DiscountCandidates() ([]dto.DiscountProduct, error) {
	all, err := s.productRepo.GetAllProducts()
	if err != nil {
		return nil, err
	}

	var candidates []dto.DiscountProduct
	for _, product := range all {
		if !product.IsDiscounted() || product.QuantityInStock <= 0 {
			continue
		}
		candidates = append(candidates, dto.DiscountProduct{
			ProductID:          product.ID,
			ProductName:        product.Name,
			OriginalPrice:      product.BasePrice,
			DiscountedPrice:    product.CurrentPrice(),
			DiscountPercentage: product.DiscountPercentage,
			DaysUntilExpiry:    product.DaysUntilExpiry(s.currentDate),
			CurrentStock:       product.QuantityInStock,
		})
	}
	return candidates, nil
}

// Statistics returns a copy of the accumulated run statistics
func (s *WarehouseService) Statistics() entities.WarehouseStatistics {
	return s.stats
}

// Summary returns the current aggregate warehouse view
func (s *WarehouseService) Summary() entities.WarehouseSummary {
	return s.summary
}

// Report builds the final report for the days simulated so far
func (s *WarehouseService) Report() *dto.SimulationReport {
	return &dto.SimulationReport{
		DaysSimulated: s.currentDay,
		Statistics:    s.stats,
		Summary:       s.summary,
	}
}

// CurrentDay returns the number of completed simulation days
func (s *WarehouseService) CurrentDay() int {
	return s.currentDay
}

// CurrentDate returns the current simulation date
func (s *WarehouseService) CurrentDate() time.Time {
	return s.currentDate
}

// StartDate returns the session's day-zero date
func (s *WarehouseService) StartDate() time.Time {
	return s.startDate
}

// IsComplete reports whether the configured day count has been reached
func (s *WarehouseService) IsComplete() bool {
	return s.currentDay >= s.cfg.SimulationDays
}

// Config returns the session configuration
func (s *WarehouseService) Config() config.SimulationConfig {
	return s.cfg
}

// Events returns the session event log
func (s *WarehouseService) Events() *events.InMemoryEventStore {
	return s.events
}

// writeOffExpired zeroes the stock of expired products and emits one event
// per write-off
func (s *WarehouseService) writeOffExpired() int {
	products := s.mustProducts()

	type writeOff struct {
		id    entities.ProductID
		units entities.Quantity
		loss  decimal.Decimal
	}
	var pending []writeOff
	for _, product := range products {
		if product.QuantityInStock > 0 && product.IsExpired(s.currentDate) {
			pending = append(pending, writeOff{
				id:    product.ID,
				units: product.QuantityInStock,
				loss:  product.BasePrice.Mul(decimal.NewFromInt(int64(product.QuantityInStock))),
			})
		}
	}

	expired := s.inventory.CheckExpiredProducts(products, &s.stats, s.currentDate)
	for _, w := range pending {
		s.emit(events.ProductExpiredEvent, events.ProductStream, events.ProductExpired{
			ProductID:    w.id,
			UnitsWritten: w.units,
			Loss:         w.loss,
		})
	}
	return expired
}

// applyAutomaticDiscounts marks down every in-stock product entering the
// markdown window, at most once per depletion cycle
func (s *WarehouseService) applyAutomaticDiscounts() int {
	applied := 0
	for _, product := range s.mustProducts() {
		if !s.discounts.ShouldDiscount(product, s.currentDate) {
			continue
		}

		daysLeft := product.DaysUntilExpiry(s.currentDate)
		rate := s.discounts.RateFor(daysLeft)
		if rate.IsZero() {
			continue
		}

		product.DiscountPercentage = rate
		applied++
		s.emit(events.ProductDiscountedEvent, events.ProductStream, events.ProductDiscounted{
			ProductID: product.ID,
			Rate:      rate,
			DaysLeft:  daysLeft,
		})
		s.logger.Debug("automatic markdown applied",
			slog.Int("product_id", int(product.ID)),
			slog.String("rate", rate.String()),
			slog.Int("days_left", daysLeft))
	}
	return applied
}

func (s *WarehouseService) generateOrdersFor(date time.Time) ([]*entities.Order, error) {
	stores, err := s.storeRepo.GetAllStores()
	if err != nil {
		return nil, fmt.Errorf("get stores: %w", err)
	}

	generated := s.generator.GenerateDailyOrders(stores, s.mustProducts(), s.cfg, date)
	for _, order := range generated {
		if err := s.orderRepo.AddOrder(order); err != nil {
			return nil, fmt.Errorf("add order: %w", err)
		}
		s.emit(events.OrderCreatedEvent, events.OrderStream, events.OrderCreated{Order: *order})
	}
	return generated, nil
}

func (s *WarehouseService) processUnprocessedOrders() (int, error) {
	touched, err := s.processor.ProcessDailyOrders(s.orderRepo, s.productRepo, &s.stats)
	if err != nil {
		return 0, fmt.Errorf("process orders: %w", err)
	}

	processed := 0
	for _, order := range touched {
		if !order.IsProcessed {
			continue
		}
		processed++
		s.pendingShipments = append(s.pendingShipments, order)
		s.emit(events.OrderProcessedEvent, events.OrderStream, events.OrderProcessed{Order: *order})
	}
	return processed, nil
}

// reconcileUnprocessedOrders re-estimates shippable quantities and totals of
// pending orders after a stock change. Estimates only: no stock is deducted
// and no order is marked processed here.
func (s *WarehouseService) reconcileUnprocessedOrders() error {
	unprocessed, err := s.orderRepo.GetUnprocessedOrders()
	if err != nil {
		return fmt.Errorf("get unprocessed orders: %w", err)
	}

	for _, order := range unprocessed {
		order.TotalAmount = decimal.Zero
		for i := range order.Items {
			item := &order.Items[i]
			item.PackagesToShip = 0
			item.ActualQuantity = 0

			product, err := s.productRepo.GetProduct(item.ProductID)
			if err != nil {
				continue
			}

			packages := inventory.CalculatePackagesToShip(product, item.RequestedQuantity)
			if packages <= 0 {
				continue
			}
			item.PackagesToShip = packages
			item.ActualQuantity = packages * product.PackageSize
			itemTotal := product.CurrentPrice().Mul(decimal.NewFromInt(int64(item.ActualQuantity)))
			order.TotalAmount = order.TotalAmount.Add(itemTotal)
		}
	}
	return nil
}

func (s *WarehouseService) refreshInventoryValue() {
	total := decimal.Zero
	for _, product := range s.mustProducts() {
		total = total.Add(product.StockValue())
	}
	s.stats.TotalInventoryValue = total
}

func (s *WarehouseService) refreshSummary() {
	products := s.mustProducts()

	summary := entities.WarehouseSummary{
		TotalProducts:    len(products),
		TotalStores:      s.storeRepo.Count(),
		TotalOrders:      s.orderRepo.Count(),
		PendingShipments: len(s.pendingShipments),
	}
	for _, product := range products {
		if product.QuantityInStock > 0 {
			summary.ActiveProducts++
		}
		if product.NeedsRestocking() {
			summary.LowStockProducts++
		}
		if product.QuantityInStock > 0 && s.discounts.InWindow(product.DaysUntilExpiry(s.currentDate)) {
			summary.ExpiringSoonProducts++
		}
	}
	if open, err := s.requestRepo.GetOpenRequests(); err == nil {
		summary.PendingSupplyRequests = len(open)
	}

	s.summary = summary
}

// mustProducts returns the full catalog; the in-memory repository never fails
func (s *WarehouseService) mustProducts() []*entities.Product {
	products, err := s.productRepo.GetAllProducts()
	if err != nil {
		s.logger.Error("get products", slog.String("error", err.Error()))
		return nil
	}
	return products
}

func (s *WarehouseService) emit(eventType, stream string, data interface{}) {
	event := events.NewEvent(eventType, stream, data, s.currentDate)
	if err := s.events.AppendEvent(stream, event); err != nil {
		s.logger.Warn("append event",
			slog.String("type", eventType),
			slog.String("error", err.Error()))
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
