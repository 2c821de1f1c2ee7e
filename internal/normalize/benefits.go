package normalize

import (
	"strings"

	"github.com/policyatlas/covergrade/internal/product"
)

// normalizeAyush classifies the AYUSH treatment limit.
func normalizeAyush(text *string, limit *product.FlexNumber) product.AyushLimit {
	hasText := text != nil && strings.TrimSpace(*text) != ""
	var amount *float64
	if limit != nil {
		amount = parseAmount(limit.String())
	}

	if !hasText && amount == nil {
		return product.AyushLimit{LimitType: product.AyushNotCovered}
	}

	lower := ""
	if hasText {
		lower = strings.ToLower(*text)
	}
	switch {
	case strings.Contains(lower, "not covered"):
		return product.AyushLimit{LimitType: product.AyushNotCovered}
	case strings.Contains(lower, "up to si"), strings.Contains(lower, "sum insured"):
		return product.AyushLimit{LimitType: product.AyushUpToSI}
	case strings.Contains(lower, "%"):
		return product.AyushLimit{LimitType: product.AyushPercent, LimitValue: firstPercent(lower)}
	case amount != nil:
		return product.AyushLimit{LimitType: product.AyushRupeeCap, LimitValue: amount}
	}
	// covered but unclassified
	return product.AyushLimit{LimitType: product.AyushUpToSI}
}

// normalizeRecharge maps recharge/restore free text to a mode. Each matched
// mode independently checks for a same-illness mention.
func normalizeRecharge(text *string) product.Recharge {
	if text == nil {
		return product.Recharge{Mode: product.RechargeNA}
	}
	lower := strings.ToLower(*text)
	sameIllness := strings.Contains(lower, "same illness")

	switch {
	case strings.Contains(lower, "unlimited"):
		return product.Recharge{Mode: product.RechargeUnlimited, SameIllnessAllowed: &sameIllness}
	case strings.Contains(lower, "twice"):
		return product.Recharge{Mode: product.RechargeTwice, SameIllnessAllowed: &sameIllness}
	case strings.Contains(lower, "once"),
		strings.Contains(lower, "one-time"),
		strings.Contains(lower, "one time"):
		return product.Recharge{Mode: product.RechargeOnce, SameIllnessAllowed: &sameIllness}
	}
	return product.Recharge{Mode: product.RechargeNA}
}

// normalizeNCB extracts no-claim bonus accrual, cap and claim impact from
// free text. The cap defaults to twice the accrual when no explicit
// maximum is stated.
func normalizeNCB(text *string) product.NoClaimBonus {
	var out product.NoClaimBonus
	if text == nil {
		return out
	}
	lower := strings.ToLower(*text)

	out.AccrualPercent = firstPercent(lower)
	if cap := percentAfterMax(lower); cap != nil {
		out.MaxPercent = cap
	} else if out.AccrualPercent != nil {
		capped := *out.AccrualPercent * 2
		out.MaxPercent = &capped
	}

	switch {
	case strings.Contains(lower, "no impact"), strings.Contains(lower, "protected"):
		impact := product.NCBNoImpact
		out.ClaimImpact = &impact
	case strings.Contains(lower, "reduce"):
		impact := product.NCBReduces
		out.ClaimImpact = &impact
	}
	return out
}

// normalizeDaycare buckets daycare free text into a coverage category.
// "All day care procedures covered" style text maps to all_covered; a
// stated procedure count maps to extensive_list at 400+ and limited_list
// below that.
func normalizeDaycare(text *string) string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return product.DaycareUnspecified
	}
	lower := strings.ToLower(*text)
	switch {
	case strings.Contains(lower, "not covered"):
		return product.DaycareNotCovered
	case strings.Contains(lower, "all"):
		return product.DaycareAllCovered
	}
	if n := coerceInt(lower); n != nil {
		if *n >= 400 {
			return product.DaycareExtensiveList
		}
		return product.DaycareLimitedList
	}
	if strings.Contains(lower, "listed") || strings.Contains(lower, "covered") {
		return product.DaycareLimitedList
	}
	return product.DaycareUnspecified
}
