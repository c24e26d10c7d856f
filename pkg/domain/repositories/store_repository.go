package repositories

import "github.com/stockmaster/warehouse/pkg/domain/entities"

// StoreRepository provides access to retail store reference data
type StoreRepository interface {
	LoadStores(stores []*entities.Store) error
	GetStore(id entities.StoreID) (*entities.Store, error)
	GetAllStores() ([]*entities.Store, error)
	Count() int
	Clear()
}
