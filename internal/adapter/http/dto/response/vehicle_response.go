package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type VehicleResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Plate                string    `json:"plate"`
	Make                 string    `json:"make,omitempty"`
	Model                string    `json:"model,omitempty"`
	Year                 int       `json:"year,omitempty"`
	Status               string    `json:"status"`
	AssignedTechnicianID string    `json:"assigned_technician_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                   v.ID,
		Name:                 v.Name,
		Plate:                v.Plate,
		Make:                 v.Make,
		Model:                v.Model,
		Year:                 v.Year,
		Status:               string(v.Status),
		AssignedTechnicianID: v.AssignedTechnicianID,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
