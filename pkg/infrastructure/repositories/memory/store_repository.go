package memory

import (
	"fmt"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// StoreRepository provides in-memory store storage
type StoreRepository struct {
	stores []*entities.Store
	index  map[entities.StoreID]int
}

// NewStoreRepository creates a new in-memory store repository
func NewStoreRepository(expectedStores int) *StoreRepository {
	return &StoreRepository{
		stores: make([]*entities.Store, 0, expectedStores),
		index:  make(map[entities.StoreID]int, expectedStores),
	}
}

// Verify interface compliance
var _ repositories.StoreRepository = (*StoreRepository)(nil)

// LoadStores loads stores into the repository
func (r *StoreRepository) LoadStores(stores []*entities.Store) error {
	for _, store := range stores {
		if _, exists := r.index[store.ID]; exists {
			return fmt.Errorf("duplicate store id: %d", store.ID)
		}
		r.index[store.ID] = len(r.stores)
		r.stores = append(r.stores, store)
	}
	return nil
}

// GetStore returns the store with the given id
func (r *StoreRepository) GetStore(id entities.StoreID) (*entities.Store, error) {
	idx, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("store not found: %d", id)
	}
	return r.stores[idx], nil
}

// GetAllStores returns all stores in insertion order
func (r *StoreRepository) GetAllStores() ([]*entities.Store, error) {
	stores := make([]*entities.Store, len(r.stores))
	copy(stores, r.stores)
	return stores, nil
}

// Count returns the number of stored stores
func (r *StoreRepository) Count() int {
	return len(r.stores)
}

// Clear removes all stores
func (r *StoreRepository) Clear() {
	r.stores = r.stores[:0]
	r.index = make(map[entities.StoreID]int)
}
