package events

import (
	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

const (
	DayCompletedEvent = "simulation.day.completed"

	OrderCreatedEvent   = "order.created"
	OrderProcessedEvent = "order.processed"

	ProductExpiredEvent    = "product.expired"
	ProductDiscountedEvent = "product.discounted"

	DeliveryReceivedEvent = "delivery.received"
	SupplyRequestedEvent  = "supply.requested"
)

// Stream identifiers used by the warehouse service
const (
	SimulationStream = "simulation"
	OrderStream      = "orders"
	ProductStream    = "products"
	SupplyStream     = "supply"
)

type DayCompleted struct {
	Day             int               `json:"day"`
	OrdersGenerated int               `json:"orders_generated"`
	OrdersProcessed int               `json:"orders_processed"`
	UnitsSold       entities.Quantity `json:"units_sold"`
}

type OrderCreated struct {
	Order entities.Order `json:"order"`
}

type OrderProcessed struct {
	Order entities.Order `json:"order"`
}

type ProductExpired struct {
	ProductID    entities.ProductID `json:"product_id"`
	UnitsWritten entities.Quantity  `json:"units_written_off"`
	Loss         decimal.Decimal    `json:"loss"`
}

type ProductDiscounted struct {
	ProductID entities.ProductID `json:"product_id"`
	Rate      decimal.Decimal    `json:"rate"`
	DaysLeft  int                `json:"days_left"`
}

type DeliveryReceived struct {
	Request entities.SupplyRequest `json:"request"`
}

type SupplyRequested struct {
	Request entities.SupplyRequest `json:"request"`
}
