package pricing

import "testing"

func TestValidatePriceVariance(t *testing.T) {
	cases := []struct {
		name             string
		estimated        float64
		proposed         float64
		max              float64
		valid            bool
		requiresApproval bool
		variance         float64
	}{
		{name: "decrease always allowed", estimated: 100, proposed: 95, max: DefaultMaxVariancePercent, valid: true, variance: -5},
		{name: "increase above threshold", estimated: 100, proposed: 115, max: DefaultMaxVariancePercent, valid: false, requiresApproval: true, variance: 15},
		{name: "increase at threshold", estimated: 100, proposed: 110, max: DefaultMaxVariancePercent, valid: true, variance: 10},
		{name: "small increase", estimated: 200, proposed: 210, max: DefaultMaxVariancePercent, valid: true, variance: 5},
		{name: "no estimate short-circuits", estimated: 0, proposed: 500, max: DefaultMaxVariancePercent, valid: true},
		{name: "negative estimate short-circuits", estimated: -10, proposed: 500, max: DefaultMaxVariancePercent, valid: true},
		{name: "equal price", estimated: 100, proposed: 100, max: DefaultMaxVariancePercent, valid: true, variance: 0},
		{name: "custom threshold", estimated: 100, proposed: 115, max: 20, valid: true, variance: 15},
		{name: "rounded variance", estimated: 300, proposed: 310, max: 3, valid: false, requiresApproval: true, variance: 3.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidatePriceVariance(tc.estimated, tc.proposed, tc.max)
			if res.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %v", tc.valid, res.Valid)
			}
			if res.RequiresApproval != tc.requiresApproval {
				t.Fatalf("expected requiresApproval=%v, got %v", tc.requiresApproval, res.RequiresApproval)
			}
			if res.VariancePercent != tc.variance {
				t.Fatalf("expected variance %v, got %v", tc.variance, res.VariancePercent)
			}
			if !res.Valid && res.Message == "" {
				t.Fatalf("expected message on invalid result")
			}
		})
	}
}
