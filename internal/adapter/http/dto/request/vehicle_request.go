package request

import "fieldops/internal/usecase"

type CreateVehicleRequest struct {
	Name  string `json:"name" binding:"required"`
	Plate string `json:"plate" binding:"required"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

func (r CreateVehicleRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		Name:  r.Name,
		Plate: r.Plate,
		Make:  r.Make,
		Model: r.Model,
		Year:  r.Year,
	}
}

// UpdateVehicleRequest carries the mutable fields; absent fields are left
// unchanged.
type UpdateVehicleRequest struct {
	Name  *string `json:"name"`
	Plate *string `json:"plate"`
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int    `json:"year"`
}

func (r UpdateVehicleRequest) ToInput() usecase.UpdateVehicleInput {
	return usecase.UpdateVehicleInput{
		Name:  r.Name,
		Plate: r.Plate,
		Make:  r.Make,
		Model: r.Model,
		Year:  r.Year,
	}
}

type ChangeVehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignVehicleTechnicianRequest sets the vehicle's usual driver. An empty
// technician_id clears the assignment.
type AssignVehicleTechnicianRequest struct {
	TechnicianID string `json:"technician_id"`
}
