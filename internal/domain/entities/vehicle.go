package entities

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusInService   VehicleStatus = "IN_SERVICE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusInService, VehicleStatusMaintenance, VehicleStatusRetired:
		return true
	}
	return false
}

// Vehicle is a fleet unit assignable to a technician for field visits.
//
// Storage model (DynamoDB):
//   - PK: id
type Vehicle struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Plate                string        `json:"plate"`
	Make                 string        `json:"make,omitempty"`
	Model                string        `json:"model,omitempty"`
	Year                 int           `json:"year,omitempty"`
	Status               VehicleStatus `json:"status"`
	AssignedTechnicianID string        `json:"assigned_technician_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
