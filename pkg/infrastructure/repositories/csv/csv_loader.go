package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/warehouse/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Loader handles loading warehouse fixture data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads the product catalog from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read products CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("products CSV must have header and at least one data row")
	}

	expectedHeader := []string{
		"id", "name", "description", "base_price",
		"quantity_in_stock", "max_capacity", "package_size",
		"expiry_date", "reorder_threshold",
	}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// LoadStores loads the store reference data from a CSV file
func (l *Loader) LoadStores(filename string) ([]*entities.Store, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open stores file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read stores CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("stores CSV must have header and at least one data row")
	}

	expectedHeader := []string{"id", "name", "address", "contact_person"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("stores CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var stores []*entities.Store
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("stores CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		store, err := parseStore(record)
		if err != nil {
			return nil, fmt.Errorf("stores CSV row %d: %w", i+2, err)
		}

		stores = append(stores, store)
	}

	return stores, nil
}

func parseProduct(record []string) (*entities.Product, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	basePrice, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid base_price %q: %w", record[3], err)
	}

	stock, err := parseQuantity(record[4], "quantity_in_stock")
	if err != nil {
		return nil, err
	}
	capacity, err := parseQuantity(record[5], "max_capacity")
	if err != nil {
		return nil, err
	}
	packageSize, err := parseQuantity(record[6], "package_size")
	if err != nil {
		return nil, err
	}

	expiryDate, err := time.Parse(dateLayout, strings.TrimSpace(record[7]))
	if err != nil {
		return nil, fmt.Errorf("invalid expiry_date %q: %w", record[7], err)
	}

	threshold, err := parseQuantity(record[8], "reorder_threshold")
	if err != nil {
		return nil, err
	}

	return entities.NewProduct(
		entities.ProductID(id),
		strings.TrimSpace(record[1]),
		strings.TrimSpace(record[2]),
		basePrice,
		stock, capacity, packageSize,
		expiryDate,
		threshold,
	)
}

func parseStore(record []string) (*entities.Store, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	return entities.NewStore(
		entities.StoreID(id),
		strings.TrimSpace(record[1]),
		strings.TrimSpace(record[2]),
		strings.TrimSpace(record[3]),
	)
}

func parseQuantity(field, name string) (entities.Quantity, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, field, err)
	}
	return entities.Quantity(value), nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, column := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != column {
			return false
		}
	}
	return true
}
