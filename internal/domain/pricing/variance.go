package pricing

import (
	"fmt"
	"math"
)

// DefaultMaxVariancePercent is the approval threshold for technician price
// proposals: increases above this percentage over the estimate need explicit
// customer confirmation.
const DefaultMaxVariancePercent = 10

// VarianceResult is always returned; ValidatePriceVariance never errors.
type VarianceResult struct {
	Valid            bool    `json:"valid"`
	RequiresApproval bool    `json:"requires_approval,omitempty"`
	VariancePercent  float64 `json:"variance_percent,omitempty"`
	Message          string  `json:"message,omitempty"`
}

// ValidatePriceVariance checks a technician's proposed price against the
// visit estimate. Decreases always pass. Increases above maxVariancePercent
// are flagged for approval. A missing or zero estimate short-circuits to
// valid: there is nothing to compare against.
func ValidatePriceVariance(estimatedPrice, proposedPrice, maxVariancePercent float64) VarianceResult {
	if estimatedPrice <= 0 {
		return VarianceResult{Valid: true}
	}

	variance := (proposedPrice - estimatedPrice) / estimatedPrice * 100
	variance = math.Round(variance*100) / 100

	if variance > maxVariancePercent {
		return VarianceResult{
			Valid:            false,
			RequiresApproval: true,
			VariancePercent:  variance,
			Message: fmt.Sprintf(
				"proposed price exceeds estimate by %.2f%% (max %.2f%% without approval)",
				variance, maxVariancePercent,
			),
		}
	}

	return VarianceResult{Valid: true, VariancePercent: variance}
}
