package response

import (
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/pricing"
	"fieldops/internal/usecase"
)

type JobResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	PricingMode      string    `json:"pricing_mode"`
	EstimatedTotal   *float64  `json:"estimated_total,omitempty"`
	DefaultVisitRate *float64  `json:"default_visit_rate,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		CustomerName:     j.CustomerName,
		Title:            j.Title,
		Description:      j.Description,
		PricingMode:      string(j.PricingMode),
		EstimatedTotal:   j.EstimatedTotal,
		DefaultVisitRate: j.DefaultVisitRate,
		Status:           string(j.Status),
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// JobPricingResponse is the pricing endpoint payload: the job, its visits and
// the calculator output.
type JobPricingResponse struct {
	Job         JobResponse                `json:"job"`
	Visits      []VisitResponse            `json:"visits"`
	Calculation pricing.PricingCalculation `json:"calculation"`
}

func FromJobPricing(p usecase.JobPricing) JobPricingResponse {
	visits := make([]VisitResponse, 0, len(p.Visits))
	for _, v := range p.Visits {
		visits = append(visits, FromVisit(v))
	}
	return JobPricingResponse{
		Job:         FromJob(p.Job),
		Visits:      visits,
		Calculation: p.Calculation,
	}
}
