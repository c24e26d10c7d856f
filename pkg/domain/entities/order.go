package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderID represents a unique order identifier, assigned sequentially on insertion
type OrderID int

// OrderItem represents a single product line within an order.
// ActualQuantity is always PackagesToShip * the product's package size.
type OrderItem struct {
	ProductID         ProductID `json:"product_id"`
	RequestedQuantity Quantity  `json:"requested_quantity"`
	ActualQuantity    Quantity  `json:"actual_quantity"`
	PackagesToShip    Quantity  `json:"packages_to_ship"`
}

// Order represents a store's order for one or more products
type Order struct {
	ID          OrderID         `json:"id"`
	StoreID     StoreID         `json:"store_id"`
	OrderDate   time.Time       `json:"order_date"`
	Items       []OrderItem     `json:"items"`
	IsProcessed bool            `json:"is_processed"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrder creates an unprocessed order with no items.
// The order ID is zero until the order is inserted into a repository.
func NewOrder(storeID StoreID, orderDate time.Time) (*Order, error) {
	if storeID <= 0 {
		return nil, fmt.Errorf("store id must be positive, got %d", storeID)
	}

	return &Order{
		StoreID:   storeID,
		OrderDate: orderDate,
		Items:     []OrderItem{},
	}, nil
}

// AddItem appends an order item
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
}

// HasShippedItems reports whether any item has a nonzero shipped quantity
func (o *Order) HasShippedItems() bool {
	for _, item := range o.Items {
		if item.ActualQuantity > 0 {
			return true
		}
	}
	return false
}

// TotalUnits returns the total shipped unit count across all items
func (o *Order) TotalUnits() Quantity {
	var total Quantity
	for _, item := range o.Items {
		total += item.ActualQuantity
	}
	return total
}
