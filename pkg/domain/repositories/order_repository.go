package repositories

import "github.com/stockmaster/warehouse/pkg/domain/entities"

// OrderRepository provides access to the order backlog.
// AddOrder assigns sequential 1-based identifiers in insertion order.
type OrderRepository interface {
	AddOrder(order *entities.Order) error
	// LoadOrders inserts orders that already carry identifiers, preserving
	// them. Subsequent AddOrder calls continue after the highest loaded id.
	LoadOrders(orders []*entities.Order) error
	GetOrder(id entities.OrderID) (*entities.Order, error)
	GetAllOrders() ([]*entities.Order, error)
	// GetUnprocessedOrders returns unprocessed orders sorted by order date
	// ascending, with insertion order as the tie-break.
	GetUnprocessedOrders() ([]*entities.Order, error)
	Count() int
	Clear()
}
