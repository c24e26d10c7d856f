package entities

import "fmt"

// StoreID represents a unique retail store identifier
type StoreID int

// Store represents a retail store supplied by the warehouse.
// Stores are static reference data, immutable after creation.
type Store struct {
	ID            StoreID `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contact_person"`
}

// NewStore creates a validated Store
func NewStore(id StoreID, name, address, contactPerson string) (*Store, error) {
	if id <= 0 {
		return nil, fmt.Errorf("store id must be positive, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("store name cannot be empty")
	}

	return &Store{
		ID:            id,
		Name:          name,
		Address:       address,
		ContactPerson: contactPerson,
	}, nil
}
