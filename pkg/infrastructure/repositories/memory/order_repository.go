package memory

import (
	"fmt"
	"sort"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage with sequential id assignment
type OrderRepository struct {
	orders []*entities.Order
	index  map[entities.OrderID]int
	nextID entities.OrderID
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: []*entities.Order{},
		index:  make(map[entities.OrderID]int),
		nextID: 1,
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// AddOrder inserts an order and assigns the next sequential id
func (r *OrderRepository) AddOrder(order *entities.Order) error {
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}

	order.ID = r.nextID
	r.nextID++
	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
	return nil
}

// LoadOrders inserts orders with pre-assigned ids, keeping them intact
func (r *OrderRepository) LoadOrders(orders []*entities.Order) error {
	for _, order := range orders {
		if order == nil {
			return fmt.Errorf("order cannot be nil")
		}
		if _, exists := r.index[order.ID]; exists {
			return fmt.Errorf("duplicate order id: %d", order.ID)
		}
		r.index[order.ID] = len(r.orders)
		r.orders = append(r.orders, order)
		if order.ID >= r.nextID {
			r.nextID = order.ID + 1
		}
	}
	return nil
}

// GetOrder returns the order with the given id
func (r *OrderRepository) GetOrder(id entities.OrderID) (*entities.Order, error) {
	idx, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("order not found: %d", id)
	}
	return r.orders[idx], nil
}

// GetAllOrders returns all orders in insertion order
func (r *OrderRepository) GetAllOrders() ([]*entities.Order, error) {
	orders := make([]*entities.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetUnprocessedOrders returns unprocessed orders sorted by order date
// ascending; insertion order breaks ties
func (r *OrderRepository) GetUnprocessedOrders() ([]*entities.Order, error) {
	var unprocessed []*entities.Order
	for _, order := range r.orders {
		if !order.IsProcessed {
			unprocessed = append(unprocessed, order)
		}
	}
	sort.SliceStable(unprocessed, func(i, j int) bool {
		return unprocessed[i].OrderDate.Before(unprocessed[j].OrderDate)
	})
	return unprocessed, nil
}

// Count returns the number of stored orders
func (r *OrderRepository) Count() int {
	return len(r.orders)
}

// Clear removes all orders and resets id assignment
func (r *OrderRepository) Clear() {
	r.orders = r.orders[:0]
	r.index = make(map[entities.OrderID]int)
	r.nextID = 1
}
