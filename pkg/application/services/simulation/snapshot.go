package simulation

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/stockmaster/warehouse/pkg/application/config"
	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

// Snapshot is a point-in-time capture of a simulation session: configuration,
// clock, all entities, accumulated statistics and the random generator state.
// A session restored from a snapshot taken after day N produces the same day
// N+1 the original session would have. The event log is deliberately not
// captured; it is an ephemeral audit trail of the live session.
type Snapshot struct {
	Config             config.SimulationConfig      `json:"config"`
	Seed               uint64                       `json:"seed"`
	CurrentDay         int                          `json:"current_day"`
	StartDate          time.Time                    `json:"start_date"`
	CurrentDate        time.Time                    `json:"current_date"`
	Initialized        bool                         `json:"initialized"`
	Products           []entities.Product           `json:"products"`
	Stores             []entities.Store             `json:"stores"`
	Orders             []entities.Order             `json:"orders"`
	SupplyRequests     []entities.SupplyRequest     `json:"supply_requests"`
	PendingShipmentIDs []entities.OrderID           `json:"pending_shipment_ids"`
	Statistics         entities.WarehouseStatistics `json:"statistics"`
	RNGState           []byte                       `json:"rng_state"`
}

// Encode writes the snapshot as JSON
func (snap *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a JSON snapshot
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Snapshot captures the full session state. Entities are deep-copied, so the
// snapshot stays stable while the session keeps running.
func (s *WarehouseService) Snapshot() (*Snapshot, error) {
	rngState, err := s.rng.State()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}
	stores, err := s.storeRepo.GetAllStores()
	if err != nil {
		return nil, fmt.Errorf("snapshot stores: %w", err)
	}
	orders, err := s.orderRepo.GetAllOrders()
	if err != nil {
		return nil, fmt.Errorf("snapshot orders: %w", err)
	}
	requests, err := s.requestRepo.GetAllRequests()
	if err != nil {
		return nil, fmt.Errorf("snapshot supply requests: %w", err)
	}

	snap := &Snapshot{
		Config:      s.cfg,
		Seed:        s.seed,
		CurrentDay:  s.currentDay,
		StartDate:   s.startDate,
		CurrentDate: s.currentDate,
		Initialized: s.initialized,
		Statistics:  s.stats,
		RNGState:    rngState,
	}
	for _, product := range products {
		snap.Products = append(snap.Products, *product)
	}
	for _, store := range stores {
		snap.Stores = append(snap.Stores, *store)
	}
	for _, order := range orders {
		snap.Orders = append(snap.Orders, copyOrder(order))
	}
	for _, request := range requests {
		snap.SupplyRequests = append(snap.SupplyRequests, *request)
	}
	for _, order := range s.pendingShipments {
		snap.PendingShipmentIDs = append(snap.PendingShipmentIDs, order.ID)
	}

	return snap, nil
}

// Restore builds a new session from a snapshot. The restored session
// continues the original random sequence.
func Restore(snap *Snapshot, logger *slog.Logger) (*WarehouseService, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: snapshot cannot be nil", ErrInvalidArgument)
	}

	s, err := NewAt(snap.Config, snap.Seed, snap.StartDate, logger)
	if err != nil {
		return nil, err
	}
	if err := s.rng.Restore(snap.RNGState); err != nil {
		return nil, err
	}

	products := make([]*entities.Product, len(snap.Products))
	for i := range snap.Products {
		product := snap.Products[i]
		products[i] = &product
	}
	stores := make([]*entities.Store, len(snap.Stores))
	for i := range snap.Stores {
		store := snap.Stores[i]
		stores[i] = &store
	}
	orders := make([]*entities.Order, len(snap.Orders))
	for i := range snap.Orders {
		order := copyOrder(&snap.Orders[i])
		orders[i] = &order
	}
	requests := make([]*entities.SupplyRequest, len(snap.SupplyRequests))
	for i := range snap.SupplyRequests {
		request := snap.SupplyRequests[i]
		requests[i] = &request
	}

	if len(products) > 0 {
		if err := s.productRepo.LoadProducts(products); err != nil {
			return nil, fmt.Errorf("restore products: %w", err)
		}
	}
	if len(stores) > 0 {
		if err := s.storeRepo.LoadStores(stores); err != nil {
			return nil, fmt.Errorf("restore stores: %w", err)
		}
	}
	if err := s.orderRepo.LoadOrders(orders); err != nil {
		return nil, fmt.Errorf("restore orders: %w", err)
	}
	if err := s.requestRepo.LoadRequests(requests); err != nil {
		return nil, fmt.Errorf("restore supply requests: %w", err)
	}

	for _, id := range snap.PendingShipmentIDs {
		order, err := s.orderRepo.GetOrder(id)
		if err != nil {
			return nil, fmt.Errorf("restore pending shipment %d: %w", id, err)
		}
		s.pendingShipments = append(s.pendingShipments, order)
	}

	s.currentDay = snap.CurrentDay
	s.currentDate = dateOnly(snap.CurrentDate)
	s.initialized = snap.Initialized
	s.stats = snap.Statistics
	s.refreshSummary()

	return s, nil
}

// copyOrder deep-copies an order, detaching its items slice
func copyOrder(order *entities.Order) entities.Order {
	out := *order
	out.Items = make([]entities.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	return out
}
