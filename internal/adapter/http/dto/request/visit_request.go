package request

import (
	"time"

	"fieldops/internal/usecase"
)

// CreateVisitRequest is the payload accepted when adding a visit to a job.
// Providing scheduled_date creates the visit already scheduled.
type CreateVisitRequest struct {
	ScheduledDate   *time.Time `json:"scheduled_date"`
	EstimatedPrice  *float64   `json:"estimated_price"`
	RequiresDeposit bool       `json:"requires_deposit"`
	DepositAmount   *float64   `json:"deposit_amount"`
}

func (r CreateVisitRequest) ToInput() usecase.CreateVisitInput {
	return usecase.CreateVisitInput{
		ScheduledDate:   r.ScheduledDate,
		EstimatedPrice:  r.EstimatedPrice,
		RequiresDeposit: r.RequiresDeposit,
		DepositAmount:   r.DepositAmount,
	}
}

// AssignVisitRequest sets the visit's technician. An empty technician_id
// clears the assignment.
type AssignVisitRequest struct {
	TechnicianID string `json:"technician_id"`
	VehicleID    string `json:"vehicle_id"`
}

type ScheduleVisitRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type CompleteVisitRequest struct {
	ActualPrice *float64 `json:"actual_price"`
}

type ProposePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}
