package scoring

import (
	"fmt"

	"github.com/policyatlas/covergrade/internal/product"
)

// scoreCopay tiers the mandatory copay by type and percent, with an extra
// penalty for high network-based copay.
func scoreCopay(p product.CanonicalProduct) (float64, string) {
	c := p.Copay
	if c.MandatoryCopayType == product.CopayNone {
		return 100, "No mandatory copay"
	}

	pct := c.MandatoryCopayPercent
	var score float64
	var rationale string
	switch {
	case pct == nil:
		score = 60
		rationale = fmt.Sprintf("Mandatory %s copay, percent unspecified", c.MandatoryCopayType)
	case *pct <= 10:
		score = 70
		rationale = fmt.Sprintf("Mandatory %s copay of %.4g%%", c.MandatoryCopayType, *pct)
	case *pct <= 20:
		score = 50
		rationale = fmt.Sprintf("Mandatory %s copay of %.4g%%", c.MandatoryCopayType, *pct)
	default:
		score = 30
		rationale = fmt.Sprintf("High mandatory %s copay of %.4g%%", c.MandatoryCopayType, *pct)
	}

	if c.MandatoryCopayType == product.CopayNetwork && pct != nil && *pct >= 20 {
		score -= 10
		rationale += "; heavy out-of-network penalty"
	}
	return clamp(score, 0, 100), rationale
}

// scoreCataract tiers the cataract sublimit: percent-of-SI and rupee caps
// are scored relative to the base sum insured; no sublimit is best.
func scoreCataract(p product.CanonicalProduct) (float64, string) {
	cat := p.Sublimits.Cataract
	switch cat.LimitType {
	case product.CataractNotApplicable:
		return 100, "No cataract sublimit"
	case product.CataractPercentOfSI:
		if cat.LimitValue == nil {
			return 50, "Cataract sublimit as percent of SI, value unclear"
		}
		rationale := fmt.Sprintf("Cataract limited to %.4g%% of SI", *cat.LimitValue)
		if cat.PerEye != nil && *cat.PerEye {
			rationale += " per eye"
		}
		switch {
		case *cat.LimitValue >= 50:
			return 80, rationale
		case *cat.LimitValue >= 25:
			return 60, rationale
		default:
			return 40, rationale
		}
	case product.CataractRupeeCap:
		if cat.LimitValue == nil {
			return 50, "Cataract rupee cap, amount unclear"
		}
		ratio := *cat.LimitValue / p.SumInsured.BaseSI
		rationale := fmt.Sprintf("Cataract capped at ₹%.0f", *cat.LimitValue)
		if cat.PerEye != nil && *cat.PerEye {
			rationale += " per eye"
		}
		switch {
		case ratio >= 0.2:
			return 75, rationale
		case ratio >= 0.08:
			return 55, rationale
		default:
			return 35, rationale
		}
	default:
		return 50, "Cataract sublimit not recognized"
	}
}

// scoreWaitingPeriods tiers by PED months, penalizes caps being exceeded
// on the initial and specific-ailment periods, and rewards reduction
// options.
func scoreWaitingPeriods(p product.CanonicalProduct) (float64, string) {
	wp := p.WaitingPeriods
	rationale := fmt.Sprintf("%d days initial, %d months specific, %d months PED",
		wp.InitialDays, wp.SpecificAilmentsMonths, wp.PEDMonths)

	var score float64
	switch {
	case wp.PEDMonths <= 24:
		score = 100
	case wp.PEDMonths <= 36:
		score = 90
	case wp.PEDMonths <= 48:
		score = 75
	default:
		score = 50
	}

	if wp.InitialDays > 30 {
		score -= 10
	}
	switch {
	case wp.SpecificAilmentsMonths > 36:
		score -= 15
	case wp.SpecificAilmentsMonths > 24:
		score -= 5
	}
	if wp.PEDReductionAvailable {
		score += 5
		rationale += "; PED reduction available"
	}
	if wp.SpecificReductionAvailable {
		score += 5
		rationale += "; specific-ailment reduction available"
	}
	return clamp(score, 0, 100), rationale
}
