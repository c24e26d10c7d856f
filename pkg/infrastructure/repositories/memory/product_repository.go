package memory

import (
	"fmt"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/domain/repositories"
)

// ProductRepository provides in-memory product storage
type ProductRepository struct {
	products []*entities.Product
	index    map[entities.ProductID]int
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products: make([]*entities.Product, 0, expectedProducts),
		index:    make(map[entities.ProductID]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		if _, exists := r.index[product.ID]; exists {
			return fmt.Errorf("duplicate product id: %d", product.ID)
		}
		r.index[product.ID] = len(r.products)
		r.products = append(r.products, product)
	}
	return nil
}

// GetProduct returns the product with the given id
func (r *ProductRepository) GetProduct(id entities.ProductID) (*entities.Product, error) {
	idx, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("product not found: %d", id)
	}
	return r.products[idx], nil
}

// GetAllProducts returns all products in insertion order
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	products := make([]*entities.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// Count returns the number of stored products
func (r *ProductRepository) Count() int {
	return len(r.products)
}

// Clear removes all products
func (r *ProductRepository) Clear() {
	r.products = r.products[:0]
	r.index = make(map[entities.ProductID]int)
}
