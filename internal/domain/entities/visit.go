package entities

import "time"

// VisitStatus is the lifecycle of one scheduled occurrence of work.
//
// PENDING -> ASSIGNED -> SCHEDULED -> IN_PROGRESS -> COMPLETED
// CANCELLED is reachable from any non-terminal status.

type VisitStatus string

const (
	VisitStatusPending    VisitStatus = "PENDING"
	VisitStatusAssigned   VisitStatus = "ASSIGNED"
	VisitStatusScheduled  VisitStatus = "SCHEDULED"
	VisitStatusInProgress VisitStatus = "IN_PROGRESS"
	VisitStatusCompleted  VisitStatus = "COMPLETED"
	VisitStatusCancelled  VisitStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s VisitStatus) Terminal() bool {
	return s == VisitStatusCompleted || s == VisitStatusCancelled
}

// Visit is one scheduled occurrence of work within a Job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (scheduled_day-index): scheduled_day (YYYY-MM-DD, denormalized
//     from ScheduledDate for the dispatch board)
//
// Pricing fields keep each visit independently trackable: ActualPrice wins
// over EstimatedPrice, which wins over the job's DefaultVisitRate.
type Visit struct {
	ID                string      `json:"id"`
	JobID             string      `json:"job_id"`
	VisitNumber       int         `json:"visit_number"`
	ScheduledDate     *time.Time  `json:"scheduled_date,omitempty"`
	Status            VisitStatus `json:"status"`
	TechnicianID      string      `json:"technician_id,omitempty"`
	VehicleID         string      `json:"vehicle_id,omitempty"`
	EstimatedPrice    *float64    `json:"estimated_price,omitempty"`
	ActualPrice       *float64    `json:"actual_price,omitempty"`
	TechProposedPrice *float64    `json:"tech_proposed_price,omitempty"`

	RequiresDeposit  bool       `json:"requires_deposit"`
	DepositAmount    *float64   `json:"deposit_amount,omitempty"`
	DepositPaidAt    *time.Time `json:"deposit_paid_at,omitempty"`
	DepositPaymentID string     `json:"deposit_payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
