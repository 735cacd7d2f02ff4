// Package pricing holds the job pricing calculator: pure functions over Job
// and Visit records, no I/O. Handlers load state, call in here, serialize out.
package pricing

import "fieldops/internal/domain/entities"

// PriceSource tells which field an effective visit price was resolved from.

type PriceSource string

const (
	PriceSourceActual      PriceSource = "actual"
	PriceSourceEstimated   PriceSource = "estimated"
	PriceSourceDefaultRate PriceSource = "default_rate"
	PriceSourceNone        PriceSource = "none"
)

// VisitPrice is one line of the per-visit breakdown.
type VisitPrice struct {
	VisitID        string               `json:"visit_id"`
	VisitNumber    int                  `json:"visit_number"`
	Status         entities.VisitStatus `json:"status"`
	EffectivePrice float64              `json:"effective_price"`
	Source         PriceSource          `json:"source"`
}

// PricingCalculation is the full pricing picture of a job.
//
// Invariants:
//   - Subtotal == CompletedVisitsTotal + PendingVisitsTotal for per-visit modes.
//   - BalanceDue == Subtotal - DepositTotal for all modes.
//   - VisitBreakdown is nil for FIXED_TOTAL, else has one entry per visit in
//     input order.
type PricingCalculation struct {
	Mode                 entities.PricingMode `json:"mode"`
	Subtotal             float64              `json:"subtotal"`
	VisitBreakdown       []VisitPrice         `json:"visit_breakdown,omitempty"`
	CompletedVisitsTotal float64              `json:"completed_visits_total"`
	PendingVisitsTotal   float64              `json:"pending_visits_total"`
	DepositTotal         float64              `json:"deposit_total"`
	BalanceDue           float64              `json:"balance_due"`
}

// CalculateJobTotal computes the subtotal, per-visit breakdown, deposit total
// and balance due for a job.
//
// Mode behavior:
//   - FIXED_TOTAL: subtotal is the job's estimated total; no breakdown.
//   - PER_VISIT: each visit resolves actual -> estimated -> default rate -> 0.
//   - HYBRID: as PER_VISIT, but the first visit never inherits the default
//     rate (diagnostic visit priced on its own).
//
// Unknown modes degrade to FIXED_TOTAL behavior rather than failing.
func CalculateJobTotal(job entities.Job, visits []entities.Visit) PricingCalculation {
	calc := PricingCalculation{Mode: job.PricingMode}

	switch job.PricingMode {
	case entities.PricingModePerVisit, entities.PricingModeHybrid:
		calc.VisitBreakdown = make([]VisitPrice, 0, len(visits))
		for i, v := range visits {
			price, source := effectiveVisitPrice(job, v, i)
			calc.VisitBreakdown = append(calc.VisitBreakdown, VisitPrice{
				VisitID:        v.ID,
				VisitNumber:    v.VisitNumber,
				Status:         v.Status,
				EffectivePrice: price,
				Source:         source,
			})
			if v.Status == entities.VisitStatusCompleted {
				calc.CompletedVisitsTotal += price
			} else {
				calc.PendingVisitsTotal += price
			}
		}
		calc.Subtotal = calc.CompletedVisitsTotal + calc.PendingVisitsTotal
	default:
		if job.EstimatedTotal != nil {
			calc.Subtotal = *job.EstimatedTotal
		}
	}

	for _, v := range visits {
		if v.DepositPaidAt != nil && v.DepositAmount != nil {
			calc.DepositTotal += *v.DepositAmount
		}
	}
	calc.BalanceDue = calc.Subtotal - calc.DepositTotal

	return calc
}

// effectiveVisitPrice resolves one visit's price under the job's mode.
// The resolution order actual -> estimated -> default rate -> 0 holds for
// every visit status. index is the visit's position in the job's ordered
// sequence.
func effectiveVisitPrice(job entities.Job, v entities.Visit, index int) (float64, PriceSource) {
	if v.ActualPrice != nil {
		return *v.ActualPrice, PriceSourceActual
	}

	if v.EstimatedPrice != nil {
		return *v.EstimatedPrice, PriceSourceEstimated
	}

	// HYBRID: the first visit must carry its own price.
	if job.PricingMode == entities.PricingModeHybrid && index == 0 {
		return 0, PriceSourceNone
	}

	if job.DefaultVisitRate != nil {
		return *job.DefaultVisitRate, PriceSourceDefaultRate
	}
	return 0, PriceSourceNone
}

// CanChangePricingMode reports whether the job's pricing mode is still
// mutable. The mode locks once any visit has been completed.
func CanChangePricingMode(visits []entities.Visit) bool {
	for _, v := range visits {
		if v.Status == entities.VisitStatusCompleted {
			return false
		}
	}
	return true
}
