package scoring

import (
	"fmt"

	"github.com/policyatlas/covergrade/internal/product"
)

// scorePrePost tiers pre/post-hospitalization day coverage by the day-count
// combination. 60/180 is the market-leading combination.
func scorePrePost(p product.CanonicalProduct) (float64, string) {
	pre, post := p.Hospitalization.PreDays, p.Hospitalization.PostDays
	if pre == nil || post == nil {
		return 40, "Pre/post hospitalization days not specified"
	}
	rationale := fmt.Sprintf("%d days pre, %d days post hospitalization", *pre, *post)
	switch {
	case *pre == 0 || *post == 0:
		return 20, rationale
	case *pre >= 90 && *post >= 180:
		return 100, rationale
	case *pre >= 60 && *post >= 180:
		return 95, rationale
	case *pre >= 60 && *post >= 90:
		return 80, rationale
	case *pre >= 30 && *post >= 60:
		return 65, rationale
	default:
		return 45, rationale
	}
}

// scoreDaycare scores categorical daycare coverage breadth.
func scoreDaycare(p product.CanonicalProduct) (float64, string) {
	switch p.Hospitalization.Daycare {
	case product.DaycareAllCovered:
		return 100, "All daycare procedures covered"
	case product.DaycareExtensiveList:
		return 80, "Extensive list of daycare procedures covered"
	case product.DaycareLimitedList:
		return 60, "Limited list of daycare procedures covered"
	case product.DaycareNotCovered:
		return 0, "Daycare procedures not covered"
	default:
		return 40, "Daycare coverage not specified"
	}
}

// scoreAyush scores the AYUSH treatment limit relative to sum insured.
func scoreAyush(p product.CanonicalProduct) (float64, string) {
	ayush := p.Hospitalization.Ayush
	switch ayush.LimitType {
	case product.AyushUpToSI:
		return 100, "AYUSH covered up to sum insured"
	case product.AyushPercent:
		if ayush.LimitValue == nil {
			return 60, "AYUSH covered to an unspecified percent of SI"
		}
		rationale := fmt.Sprintf("AYUSH covered up to %.4g%% of SI", *ayush.LimitValue)
		if *ayush.LimitValue >= 50 {
			return 80, rationale
		}
		return 60, rationale
	case product.AyushRupeeCap:
		if ayush.LimitValue == nil {
			return 50, "AYUSH rupee cap, amount unclear"
		}
		rationale := fmt.Sprintf("AYUSH capped at ₹%.0f", *ayush.LimitValue)
		switch {
		case *ayush.LimitValue >= p.SumInsured.BaseSI*0.5:
			return 85, rationale
		case *ayush.LimitValue >= p.SumInsured.BaseSI*0.1:
			return 65, rationale
		default:
			return 50, rationale
		}
	default:
		return 0, "AYUSH treatments not covered"
	}
}

// scoreDomiciliary tiers domiciliary treatment by coverage, the minimum
// days condition, and the presence of a negative list.
func scoreDomiciliary(p product.CanonicalProduct) (float64, string) {
	dom := p.Hospitalization.Domiciliary
	if !dom.Covered {
		return 30, "Domiciliary treatment not covered"
	}
	score := 70.0
	rationale := "Domiciliary treatment covered"
	if dom.MinDays == nil || *dom.MinDays <= 3 {
		score += 15
	} else {
		rationale += fmt.Sprintf(" after %d days minimum", *dom.MinDays)
	}
	if dom.HasNegativeList == nil || !*dom.HasNegativeList {
		score += 15
	} else {
		rationale += ", subject to a negative list"
	}
	return clamp(score, 0, 100), rationale
}
