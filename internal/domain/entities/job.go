package entities

import "time"

// PricingMode is the policy governing how a job's total is computed.
//
// Domain notes:
//   - FIXED_TOTAL: the job carries one negotiated total; visits are not priced.
//   - PER_VISIT: every visit is priced independently (actual -> estimated ->
//     job default rate).
//   - HYBRID: like PER_VISIT, except the first visit is a diagnostic priced on
//     its own and never inherits the default rate.
//   - The mode is locked once any visit of the job is completed.

type PricingMode string

const (
	PricingModeFixedTotal PricingMode = "FIXED_TOTAL"
	PricingModePerVisit   PricingMode = "PER_VISIT"
	PricingModeHybrid     PricingMode = "HYBRID"
)

// ValidPricingMode reports whether m is one of the known modes.
func ValidPricingMode(m PricingMode) bool {
	switch m {
	case PricingModeFixedTotal, PricingModePerVisit, PricingModeHybrid:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Job is a unit of customer work that may span multiple visits.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - EstimatedTotal is the FIXED_TOTAL amount (nil when not quoted).
//   - DefaultVisitRate is the recurring per-visit fallback rate.
type Job struct {
	ID               string      `json:"id"`
	CustomerName     string      `json:"customer_name"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	PricingMode      PricingMode `json:"pricing_mode"`
	EstimatedTotal   *float64    `json:"estimated_total,omitempty"`
	DefaultVisitRate *float64    `json:"default_visit_rate,omitempty"`
	Status           JobStatus   `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
