package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Candidate is a restaurant able to cook a whole order.
// DistanceKm is nil when either side of the distance could not be geocoded.
type Candidate struct {
	Restaurant Restaurant
	DistanceKm *float64
}

// HasDistance reports whether the distance is known.
func (c Candidate) HasDistance() bool {
	return c.DistanceKm != nil
}

// Label renders the candidate the way managers read it, e.g. "Star Burger - 1.23 km".
func (c Candidate) Label() string {
	if c.DistanceKm == nil {
		return fmt.Sprintf("%s - distance unknown", c.Restaurant.DisplayName())
	}

	return fmt.Sprintf("%s - %.2f km", c.Restaurant.DisplayName(), *c.DistanceKm)
}

// MatchResult is the ranked list of restaurants for one open order.
type MatchResult struct {
	OrderID uuid.UUID
	Order   Order

	// Candidates are sorted by ascending distance, unknown distances last.
	Candidates []Candidate

	// Assigned is true when the order bypassed matching because a restaurant was already committed.
	Assigned bool
}
