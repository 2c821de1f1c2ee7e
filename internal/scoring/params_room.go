package scoring

import (
	"fmt"

	"github.com/policyatlas/covergrade/internal/product"
)

// scoreRoomRent scores the room rent limit. Thresholds:
//
//	no_cap 100, single_private_room 75, twin_sharing 60;
//	percent_of_SI: <=1% baseline 30, above baseline 50 + 5/percent capped 70;
//	rupee_cap: proportional to sum insured, clamped to [30,80].
//
// Generous ICU coverage and a waived or not-applicable proportionate
// deduction each add a fixed +10, with the final score clamped to [0,100].
func scoreRoomRent(p product.CanonicalProduct) (float64, string) {
	rr := p.RoomRent
	var score float64
	var rationale string

	switch rr.LimitType {
	case product.RoomNoCap:
		score = 100
		rationale = "No cap on room rent"
	case product.RoomSinglePrivate:
		score = 75
		rationale = "Single private room covered"
	case product.RoomTwinSharing:
		score = 60
		rationale = "Limited to twin sharing room"
	case product.RoomPercentOfSI:
		if rr.LimitValue == nil {
			score = 40
			rationale = "Room rent limit not clearly specified"
		} else if *rr.LimitValue <= 1 {
			score = 30
			rationale = fmt.Sprintf("Room rent capped at %.4g%% of SI (restrictive)", *rr.LimitValue)
		} else {
			score = clamp(50+5*(*rr.LimitValue-1), 50, 70)
			rationale = fmt.Sprintf("Room rent capped at %.4g%% of SI", *rr.LimitValue)
		}
	case product.RoomRupeeCap:
		if rr.LimitValue == nil {
			score = 40
			rationale = "Rupee cap on room rent, amount unclear"
		} else {
			pct := *rr.LimitValue / p.SumInsured.BaseSI * 100
			score = clamp(30+20*pct, 30, 80)
			rationale = fmt.Sprintf("Room rent capped at ₹%.0f/day (%.2f%% of SI)", *rr.LimitValue, pct)
		}
	default:
		score = 40
		rationale = "Room rent limit not recognized"
	}

	if generousICU(rr) {
		score += 10
		rationale += "; generous ICU coverage"
	}
	if rr.ProportionateDeduction == product.DeductionWaivedAddon ||
		rr.ProportionateDeduction == product.DeductionNotApplicable {
		score += 10
		rationale += "; proportionate deduction " + rr.ProportionateDeduction
	}
	return clamp(score, 0, 100), rationale
}

// generousICU holds for an uncapped ICU limit or a percent limit of at
// least 2% of SI.
func generousICU(rr product.RoomRent) bool {
	if rr.ICULimitType == nil {
		return false
	}
	switch *rr.ICULimitType {
	case product.RoomNoCap:
		return true
	case product.RoomPercentOfSI:
		return rr.ICULimitValue != nil && *rr.ICULimitValue >= 2
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
