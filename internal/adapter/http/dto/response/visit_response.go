package response

import (
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/pricing"
)

type VisitResponse struct {
	ID                string     `json:"id"`
	JobID             string     `json:"job_id"`
	VisitNumber       int        `json:"visit_number"`
	ScheduledDate     *time.Time `json:"scheduled_date,omitempty"`
	Status            string     `json:"status"`
	TechnicianID      string     `json:"technician_id,omitempty"`
	VehicleID         string     `json:"vehicle_id,omitempty"`
	EstimatedPrice    *float64   `json:"estimated_price,omitempty"`
	ActualPrice       *float64   `json:"actual_price,omitempty"`
	TechProposedPrice *float64   `json:"tech_proposed_price,omitempty"`
	RequiresDeposit   bool       `json:"requires_deposit"`
	DepositAmount     *float64   `json:"deposit_amount,omitempty"`
	DepositPaidAt     *time.Time `json:"deposit_paid_at,omitempty"`
	DepositPaymentID  string     `json:"deposit_payment_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromVisit(v entities.Visit) VisitResponse {
	return VisitResponse{
		ID:                v.ID,
		JobID:             v.JobID,
		VisitNumber:       v.VisitNumber,
		ScheduledDate:     v.ScheduledDate,
		Status:            string(v.Status),
		TechnicianID:      v.TechnicianID,
		VehicleID:         v.VehicleID,
		EstimatedPrice:    v.EstimatedPrice,
		ActualPrice:       v.ActualPrice,
		TechProposedPrice: v.TechProposedPrice,
		RequiresDeposit:   v.RequiresDeposit,
		DepositAmount:     v.DepositAmount,
		DepositPaidAt:     v.DepositPaidAt,
		DepositPaymentID:  v.DepositPaymentID,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromVisits(vs []entities.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVisit(v))
	}
	return out
}

// ProposePriceResponse pairs the stored visit with the variance verdict so the
// caller knows whether the proposal needs manager approval.
type ProposePriceResponse struct {
	Visit    VisitResponse          `json:"visit"`
	Variance pricing.VarianceResult `json:"variance"`
}

func FromProposedPrice(v entities.Visit, result pricing.VarianceResult) ProposePriceResponse {
	return ProposePriceResponse{Visit: FromVisit(v), Variance: result}
}
