package request

import "fieldops/internal/usecase"

type CreateTechnicianRequest struct {
	Name   string   `json:"name" binding:"required"`
	Phone  string   `json:"phone"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// UpdateTechnicianRequest carries the mutable fields; absent fields are left
// unchanged.
type UpdateTechnicianRequest struct {
	Name   *string   `json:"name"`
	Phone  *string   `json:"phone"`
	Email  *string   `json:"email"`
	Skills *[]string `json:"skills"`
}

func (r UpdateTechnicianRequest) ToInput() usecase.UpdateTechnicianInput {
	return usecase.UpdateTechnicianInput{
		Name:   r.Name,
		Phone:  r.Phone,
		Email:  r.Email,
		Skills: r.Skills,
	}
}
