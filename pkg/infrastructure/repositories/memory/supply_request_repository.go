package memory

import (
	"fmt"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// SupplyRequestRepository provides in-memory supply request storage.
// At most one open request may exist per product; AddRequest enforces this.
type SupplyRequestRepository struct {
	requests []*entities.SupplyRequest
	index    map[entities.RequestID]int
	nextID   entities.RequestID
}

// NewSupplyRequestRepository creates a new in-memory supply request repository
func NewSupplyRequestRepository() *SupplyRequestRepository {
	return &SupplyRequestRepository{
		requests: []*entities.SupplyRequest{},
		index:    make(map[entities.RequestID]int),
		nextID:   1,
	}
}

// Verify interface compliance
var _ repositories.SupplyRequestRepository = (*SupplyRequestRepository)(nil)

// AddRequest inserts a request and assigns the next sequential id.
// A request for a product with an existing open request is rejected.
func (r *SupplyRequestRepository) AddRequest(request *entities.SupplyRequest) error {
	if request == nil {
		return fmt.Errorf("supply request cannot be nil")
	}
	if r.HasOpenRequest(request.ProductID) {
		return fmt.Errorf("product %d already has an open supply request", request.ProductID)
	}

	request.ID = r.nextID
	r.nextID++
	r.index[request.ID] = len(r.requests)
	r.requests = append(r.requests, request)
	return nil
}

// LoadRequests inserts requests with pre-assigned ids, keeping them intact
func (r *SupplyRequestRepository) LoadRequests(requests []*entities.SupplyRequest) error {
	for _, request := range requests {
		if request == nil {
			return fmt.Errorf("supply request cannot be nil")
		}
		if _, exists := r.index[request.ID]; exists {
			return fmt.Errorf("duplicate supply request id: %d", request.ID)
		}
		r.index[request.ID] = len(r.requests)
		r.requests = append(r.requests, request)
		if request.ID >= r.nextID {
			r.nextID = request.ID + 1
		}
	}
	return nil
}

// GetRequest returns the request with the given id
func (r *SupplyRequestRepository) GetRequest(id entities.RequestID) (*entities.SupplyRequest, error) {
	idx, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("supply request not found: %d", id)
	}
	return r.requests[idx], nil
}

// GetAllRequests returns all requests in insertion order
func (r *SupplyRequestRepository) GetAllRequests() ([]*entities.SupplyRequest, error) {
	requests := make([]*entities.SupplyRequest, len(r.requests))
	copy(requests, r.requests)
	return requests, nil
}

// GetOpenRequests returns all unfulfilled requests in insertion order
func (r *SupplyRequestRepository) GetOpenRequests() ([]*entities.SupplyRequest, error) {
	var open []*entities.SupplyRequest
	for _, request := range r.requests {
		if !request.IsFulfilled {
			open = append(open, request)
		}
	}
	return open, nil
}

// HasOpenRequest reports whether the product has an unfulfilled request
func (r *SupplyRequestRepository) HasOpenRequest(productID entities.ProductID) bool {
	for _, request := range r.requests {
		if request.ProductID == productID && !request.IsFulfilled {
			return true
		}
	}
	return false
}

// Count returns the number of stored requests
func (r *SupplyRequestRepository) Count() int {
	return len(r.requests)
}

// Clear removes all requests and resets id assignment
func (r *SupplyRequestRepository) Clear() {
	r.requests = r.requests[:0]
	r.index = make(map[entities.RequestID]int)
	r.nextID = 1
}
