// Package report renders matching results as a plain text report for operators.
package report

import (
	"fmt"
	"io"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// Summary counts what a manager has to look at after a batch.
type Summary struct {
	Orders            int
	Assigned          int
	WithoutCandidates int
	UnknownDistances  int
}

// Summarize counts assigned orders, orders nobody can cook and candidates without a distance.
func Summarize(results []entity.MatchResult) Summary {
	s := Summary{Orders: len(results)}
	for _, result := range results {
		if result.Assigned {
			s.Assigned++

			continue
		}
		if len(result.Candidates) == 0 {
			s.WithoutCandidates++
		}
		for _, candidate := range result.Candidates {
			if !candidate.HasDistance() {
				s.UnknownDistances++
			}
		}
	}

	return s
}

// Write prints one block per order in result order followed by the summary line.
func Write(w io.Writer, results []entity.MatchResult) error {
	ew := &errWriter{w: w}

	for _, result := range results {
		order := result.Order
		ew.printf("Order %s [%s] %s\n", result.OrderID, order.Status, order.Address)
		ew.printf("  %s %s, %s, %s, total %.2f\n",
			order.FirstName, order.LastName, order.PhoneNumber, order.PaymentMethod, order.Total())
		if order.Comment != "" {
			ew.printf("  comment: %s\n", order.Comment)
		}

		switch {
		case result.Assigned && len(result.Candidates) > 0:
			ew.printf("  assigned: %s\n", result.Candidates[0].Restaurant.DisplayName())
		case len(result.Candidates) == 0:
			ew.printf("  no restaurant can cook this order\n")
		default:
			for i, candidate := range result.Candidates {
				ew.printf("  %d. %s\n", i+1, candidate.Label())
			}
		}
	}

	s := Summarize(results)
	ew.printf("\norders: %d, assigned: %d, without candidates: %d, unknown distances: %d\n",
		s.Orders, s.Assigned, s.WithoutCandidates, s.UnknownDistances)

	return ew.err
}

// errWriter keeps the first write error and skips the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	if _, err := fmt.Fprintf(ew.w, format, args...); err != nil {
		ew.err = errors.Wrap(err, "failed to write report")
	}
}
