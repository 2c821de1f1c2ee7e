package scoring

import (
	"github.com/policyatlas/covergrade/internal/product"
)

// scoreTopUp scores top-up friendliness. Non-top-up products get a neutral
// 60 so the parameter never dominates their aggregate. Top-ups tier by how
// the deductible applies, with bonuses for comprehensive coverage above
// the deductible, AYUSH inclusion, and a top-up-friendly base room rule.
func scoreTopUp(p product.CanonicalProduct) (float64, string) {
	if !p.Product.IsTopUp {
		return 60, "Not a top-up product"
	}

	tu := p.TopUpSpecifics
	var score float64
	var rationale string
	switch {
	case tu.HowDeductibleApplies == nil:
		score = 40
		rationale = "Deductible mechanics unclear"
	case *tu.HowDeductibleApplies == product.TopUpAggregateYear:
		score = 85
		rationale = "Deductible applies on aggregate annual basis"
	case *tu.HowDeductibleApplies == product.TopUpPerClaim:
		score = 50
		rationale = "Deductible applies per claim"
	default:
		score = 40
		rationale = "Deductible mechanics unclear"
	}

	if hasCoverage(tu.CoverageAboveDeductible, product.CoverageIPD) &&
		hasCoverage(tu.CoverageAboveDeductible, product.CoveragePrePost) &&
		hasCoverage(tu.CoverageAboveDeductible, product.CoverageDaycare) {
		score += 10
		rationale += "; comprehensive coverage above deductible"
	}
	if hasCoverage(tu.CoverageAboveDeductible, product.CoverageAyush) {
		score += 5
		rationale += "; includes AYUSH"
	}
	if p.RoomRent.LimitType == product.RoomNoCap {
		score += 5
		rationale += "; uncapped base room rule"
	}
	return clamp(score, 0, 100), rationale
}

func hasCoverage(set []string, want string) bool {
	for _, c := range set {
		if c == want {
			return true
		}
	}
	return false
}
