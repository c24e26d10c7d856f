package memory

import (
	"testing"
	"time"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

func TestOrderRepository_SequentialIDs(t *testing.T) {
	repo := NewOrderRepository()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		order, err := entities.NewOrder(1, date)
		if err != nil {
			t.Fatalf("Failed to create order: %v", err)
		}
		if err := repo.AddOrder(order); err != nil {
			t.Fatalf("Failed to add order: %v", err)
		}
		if order.ID != entities.OrderID(i+1) {
			t.Errorf("Expected order id %d, got %d", i+1, order.ID)
		}
	}

	if repo.Count() != 3 {
		t.Errorf("Expected 3 orders, got %d", repo.Count())
	}

	retrieved, err := repo.GetOrder(2)
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if retrieved.ID != 2 {
		t.Errorf("Expected order id 2, got %d", retrieved.ID)
	}

	if _, err := repo.GetOrder(99); err == nil {
		t.Error("Expected error for unknown order id, got none")
	}
}

func TestOrderRepository_UnprocessedOrdering(t *testing.T) {
	repo := NewOrderRepository()
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	first, _ := entities.NewOrder(1, day2)
	second, _ := entities.NewOrder(2, day1)
	third, _ := entities.NewOrder(3, day1)
	processed, _ := entities.NewOrder(4, day1)
	processed.IsProcessed = true

	for _, order := range []*entities.Order{first, second, third, processed} {
		if err := repo.AddOrder(order); err != nil {
			t.Fatalf("Failed to add order: %v", err)
		}
	}

	unprocessed, err := repo.GetUnprocessedOrders()
	if err != nil {
		t.Fatalf("Failed to get unprocessed orders: %v", err)
	}

	if len(unprocessed) != 3 {
		t.Fatalf("Expected 3 unprocessed orders, got %d", len(unprocessed))
	}

	// Date ascending, insertion order breaks the day1 tie.
	expected := []entities.StoreID{2, 3, 1}
	for i, storeID := range expected {
		if unprocessed[i].StoreID != storeID {
			t.Errorf("Position %d: expected store %d, got %d", i, storeID, unprocessed[i].StoreID)
		}
	}
}

func TestOrderRepository_Clear(t *testing.T) {
	repo := NewOrderRepository()
	order, _ := entities.NewOrder(1, time.Now())
	if err := repo.AddOrder(order); err != nil {
		t.Fatalf("Failed to add order: %v", err)
	}

	repo.Clear()

	if repo.Count() != 0 {
		t.Errorf("Expected empty repository after clear, got %d orders", repo.Count())
	}

	next, _ := entities.NewOrder(1, time.Now())
	if err := repo.AddOrder(next); err != nil {
		t.Fatalf("Failed to add order after clear: %v", err)
	}
	if next.ID != 1 {
		t.Errorf("Expected id assignment to restart at 1, got %d", next.ID)
	}
}
