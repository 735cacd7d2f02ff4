package response

import (
	"time"

	"fieldops/internal/domain/entities"
)

type ConsentEventResponse struct {
	ID            string    `json:"id"`
	CustomerPhone string    `json:"customer_phone"`
	Channel       string    `json:"channel"`
	Action        string    `json:"action"`
	Source        string    `json:"source,omitempty"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromConsentEvent(e entities.ConsentEvent) ConsentEventResponse {
	return ConsentEventResponse{
		ID:            e.ID,
		CustomerPhone: e.CustomerPhone,
		Channel:       e.Channel,
		Action:        string(e.Action),
		Source:        e.Source,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
	}
}

func FromConsentEvents(events []entities.ConsentEvent) []ConsentEventResponse {
	out := make([]ConsentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromConsentEvent(e))
	}
	return out
}
