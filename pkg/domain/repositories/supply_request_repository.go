package repositories

import "github.com/stockmaster/warehouse/pkg/domain/entities"

// SupplyRequestRepository provides access to supplier replenishment requests.
// AddRequest assigns sequential 1-based identifiers and rejects a request for
// a product that already has an open (unfulfilled) request.
type SupplyRequestRepository interface {
	AddRequest(request *entities.SupplyRequest) error
	// LoadRequests inserts requests that already carry identifiers,
	// preserving them. AddRequest continues after the highest loaded id.
	LoadRequests(requests []*entities.SupplyRequest) error
	GetRequest(id entities.RequestID) (*entities.SupplyRequest, error)
	GetAllRequests() ([]*entities.SupplyRequest, error)
	GetOpenRequests() ([]*entities.SupplyRequest, error)
	HasOpenRequest(productID entities.ProductID) bool
	Count() int
	Clear()
}
