package request

import (
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

// CreateJobRequest is the payload accepted when opening a job.
type CreateJobRequest struct {
	CustomerName     string   `json:"customer_name" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	PricingMode      string   `json:"pricing_mode" binding:"required"`
	EstimatedTotal   *float64 `json:"estimated_total"`
	DefaultVisitRate *float64 `json:"default_visit_rate"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerName:     r.CustomerName,
		Title:            r.Title,
		Description:      r.Description,
		PricingMode:      entities.PricingMode(r.PricingMode),
		EstimatedTotal:   r.EstimatedTotal,
		DefaultVisitRate: r.DefaultVisitRate,
	}
}

// UpdateJobRequest carries the mutable job fields; absent fields are left
// unchanged.
type UpdateJobRequest struct {
	CustomerName     *string  `json:"customer_name"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	EstimatedTotal   *float64 `json:"estimated_total"`
	DefaultVisitRate *float64 `json:"default_visit_rate"`
	Status           *string  `json:"status"`
}

func (r UpdateJobRequest) ToInput() usecase.UpdateJobInput {
	in := usecase.UpdateJobInput{
		CustomerName:     r.CustomerName,
		Title:            r.Title,
		Description:      r.Description,
		EstimatedTotal:   r.EstimatedTotal,
		DefaultVisitRate: r.DefaultVisitRate,
	}
	if r.Status != nil {
		s := entities.JobStatus(*r.Status)
		in.Status = &s
	}
	return in
}

type ChangePricingModeRequest struct {
	PricingMode string `json:"pricing_mode" binding:"required"`
}
