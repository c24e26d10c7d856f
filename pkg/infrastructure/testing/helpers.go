package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
	"github.com/stockmaster/warehouse/pkg/infrastructure/repositories/memory"
)

// BuildGroceryTestData builds a small fixed grocery scenario: four staple
// products at different stock and shelf-life positions plus two stores.
// The asOf date anchors the expiry dates so the scenario is stable no matter
// when the test runs.
func BuildGroceryTestData(asOf time.Time) (*memory.ProductRepository, *memory.StoreRepository) {
	productRepo := memory.NewProductRepository(4)
	storeRepo := memory.NewStoreRepository(2)

	products := []*entities.Product{
		{
			ID:               1,
			Name:             "Rice",
			Description:      "Wholesale Rice",
			BasePrice:        decimal.NewFromInt(120),
			QuantityInStock:  entities.Quantity(80),
			MaxCapacity:      entities.Quantity(200),
			PackageSize:      entities.Quantity(10),
			ExpiryDate:       asOf.AddDate(0, 0, 25),
			ReorderThreshold: entities.Quantity(50),
		},
		{
			// Inside the markdown window.
			ID:               2,
			Name:             "Milk",
			Description:      "Wholesale Milk",
			BasePrice:        decimal.NewFromInt(60),
			QuantityInStock:  entities.Quantity(40),
			MaxCapacity:      entities.Quantity(100),
			PackageSize:      entities.Quantity(5),
			ExpiryDate:       asOf.AddDate(0, 0, 2),
			ReorderThreshold: entities.Quantity(25),
		},
		{
			// Expired with stock still on hand.
			ID:               3,
			Name:             "Juice",
			Description:      "Wholesale Juice",
			BasePrice:        decimal.NewFromInt(90),
			QuantityInStock:  entities.Quantity(30),
			MaxCapacity:      entities.Quantity(150),
			PackageSize:      entities.Quantity(6),
			ExpiryDate:       asOf,
			ReorderThreshold: entities.Quantity(30),
		},
		{
			// Below the reorder threshold.
			ID:               4,
			Name:             "Coffee",
			Description:      "Wholesale Coffee",
			BasePrice:        decimal.NewFromInt(300),
			QuantityInStock:  entities.Quantity(10),
			MaxCapacity:      entities.Quantity(120),
			PackageSize:      entities.Quantity(12),
			ExpiryDate:       asOf.AddDate(0, 0, 20),
			ReorderThreshold: entities.Quantity(30),
		},
	}
	if err := productRepo.LoadProducts(products); err != nil {
		panic(err)
	}

	stores := []*entities.Store{
		{ID: 1, Name: "Store #1", Address: "12 Market Street", ContactPerson: "Manager 1"},
		{ID: 2, Name: "Store #2", Address: "48 Market Street", ContactPerson: "Manager 2"},
	}
	if err := storeRepo.LoadStores(stores); err != nil {
		panic(err)
	}

	return productRepo, storeRepo
}
