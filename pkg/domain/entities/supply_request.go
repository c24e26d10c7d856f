package entities

import (
	"fmt"
	"time"
)

// RequestID represents a unique supply request identifier
type RequestID int

// SupplyRequest represents an open replenishment order placed with an
// external supplier for a single product. At most one unfulfilled request
// may exist per product at any time.
type SupplyRequest struct {
	ID                   RequestID `json:"id"`
	ProductID            ProductID `json:"product_id"`
	Quantity             Quantity  `json:"quantity"`
	RequestDate          time.Time `json:"request_date"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	IsFulfilled          bool      `json:"is_fulfilled"`
}

// NewSupplyRequest creates a validated, unfulfilled SupplyRequest.
// The request ID is zero until the request is inserted into a repository.
func NewSupplyRequest(
	productID ProductID,
	quantity Quantity,
	requestDate, expectedDeliveryDate time.Time,
) (*SupplyRequest, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("product id must be positive, got %d", productID)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if expectedDeliveryDate.Before(requestDate) {
		return nil, fmt.Errorf("expected delivery %v cannot be before request date %v",
			expectedDeliveryDate, requestDate)
	}

	return &SupplyRequest{
		ProductID:            productID,
		Quantity:             quantity,
		RequestDate:          requestDate,
		ExpectedDeliveryDate: expectedDeliveryDate,
	}, nil
}

// IsDue reports whether the delivery is expected on or before the given date
func (r *SupplyRequest) IsDue(asOf time.Time) bool {
	return !truncateToDay(r.ExpectedDeliveryDate).After(truncateToDay(asOf))
}
