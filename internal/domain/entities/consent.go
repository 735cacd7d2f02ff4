package entities

import "time"

// ConsentAction is a messaging-consent state transition for a customer phone.

type ConsentAction string

const (
	ConsentOptIn  ConsentAction = "OPT_IN"
	ConsentOptOut ConsentAction = "OPT_OUT"
)

const ConsentChannelWhatsApp = "whatsapp"

// ConsentEvent is one append-only entry in the consent audit trail.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_phone-index): customer_phone
//
// The current consent state of a phone is the action of its latest event.
type ConsentEvent struct {
	ID            string        `json:"id"`
	CustomerPhone string        `json:"customer_phone"`
	Channel       string        `json:"channel"`
	Action        ConsentAction `json:"action"`
	Source        string        `json:"source,omitempty"`
	Note          string        `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ConsentTransitionAllowed reports whether applying next on top of the current
// action changes state. A zero-value current (no history) only admits OPT_IN.
func ConsentTransitionAllowed(current, next ConsentAction) bool {
	switch next {
	case ConsentOptIn:
		return current != ConsentOptIn
	case ConsentOptOut:
		return current == ConsentOptIn
	}
	return false
}
