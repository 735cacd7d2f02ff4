package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type TechnicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		Email:     t.Email,
		Skills:    t.Skills,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTechnicians(ts []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTechnician(t))
	}
	return out
}
