package entities

import "time"

// Technician is a field team member that visits can be dispatched to.
//
// Storage model (DynamoDB):
//   - PK: id
type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
