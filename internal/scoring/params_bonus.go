package scoring

import (
	"fmt"

	"github.com/policyatlas/covergrade/internal/product"
)

// scoreNCB tiers the no-claim bonus by accrual rate and cap, adjusted by
// the claim impact.
func scoreNCB(p product.CanonicalProduct) (float64, string) {
	ncb := p.Bonuses.NoClaimBonus
	if ncb.AccrualPercent == nil {
		return 30, "No-claim bonus not detailed"
	}
	accrual := *ncb.AccrualPercent
	capPct := 0.0
	if ncb.MaxPercent != nil {
		capPct = *ncb.MaxPercent
	}
	rationale := fmt.Sprintf("NCB accrues %.4g%%/year up to %.4g%%", accrual, capPct)

	var score float64
	switch {
	case accrual >= 50 && capPct >= 100:
		score = 100
	case accrual >= 50:
		score = 90
	case accrual >= 25 && capPct >= 100:
		score = 85
	case accrual >= 25:
		score = 70
	case accrual >= 10:
		score = 55
	default:
		score = 40
	}

	if ncb.ClaimImpact != nil {
		switch *ncb.ClaimImpact {
		case product.NCBNoImpact:
			score += 10
			rationale += "; protected against claims"
		case product.NCBReduces:
			score -= 10
			rationale += "; reduces on claim"
		}
	}
	return clamp(score, 0, 100), rationale
}

// scoreRecharge scores the recharge/restore benefit by mode, with a
// penalty when restoration excludes the same illness.
func scoreRecharge(p product.CanonicalProduct) (float64, string) {
	r := p.Bonuses.Recharge
	var score float64
	var rationale string
	switch r.Mode {
	case product.RechargeUnlimited:
		score, rationale = 100, "Unlimited sum insured recharge"
	case product.RechargeTwice:
		score, rationale = 85, "Sum insured recharges twice per year"
	case product.RechargeOnce:
		score, rationale = 70, "One-time sum insured recharge"
	default:
		return 30, "No recharge/restore benefit"
	}
	if r.SameIllnessAllowed != nil && !*r.SameIllnessAllowed {
		score -= 10
		rationale += ", not for the same illness"
	}
	return clamp(score, 0, 100), rationale
}
