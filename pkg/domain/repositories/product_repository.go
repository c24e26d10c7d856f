package repositories

import "github.com/stockmaster/warehouse/pkg/domain/entities"

// ProductRepository provides access to the warehouse product catalog.
// Products are mutated in place by the simulation services; implementations
// must hand out stable pointers to the stored entities.
type ProductRepository interface {
	LoadProducts(products []*entities.Product) error
	GetProduct(id entities.ProductID) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	Count() int
	Clear()
}
