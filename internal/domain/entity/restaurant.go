package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Restaurant is a kitchen that can cook orders.
type Restaurant struct {
	ID           uuid.UUID
	Name         string
	Address      Address
	ContactPhone string
}

// DisplayName is the name managers see. Restaurants known only by ID render as "restaurant <id>".
func (r Restaurant) DisplayName() string {
	if strings.TrimSpace(r.Name) == "" {
		return "restaurant " + r.ID.String()
	}

	return r.Name
}

// MenuItem tells whether a restaurant currently sells a product.
type MenuItem struct {
	ID         uuid.UUID
	Restaurant Restaurant
	ProductID  uuid.UUID
	Available  bool
}

// AvailabilityMatrix tells, per product, which restaurants sell it.
type AvailabilityMatrix struct {
	Restaurants []Restaurant
	Products    []ProductAvailability
}

// ProductAvailability is one matrix row. Available is aligned with AvailabilityMatrix.Restaurants.
type ProductAvailability struct {
	ProductID uuid.UUID
	Available []bool
}
