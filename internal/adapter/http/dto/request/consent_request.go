package request

// RecordConsentRequest appends a consent event for a customer phone number.
type RecordConsentRequest struct {
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Action        string `json:"action" binding:"required"`
	Source        string `json:"source"`
	Note          string `json:"note"`
}
