package normalize

import (
	"strings"

	"github.com/policyatlas/covergrade/internal/product"
)

// normalizeRoomRent applies the room-rent decision table. Rules are tested
// in a fixed precedence order so the outcome stays auditable:
//
//  1. "no room" + "cap"            -> no_cap
//  2. percent literal              -> percent_of_SI, value from text
//  3. "single" + "private"         -> single_private_room
//  4. "twin"                       -> twin_sharing
//  5. currency marker / unit word  -> rupee_cap, amount from text
//  6. otherwise                    -> percent_of_SI with null value
//
// A waiver mention in the addon text upgrades the proportionate deduction
// to waived_with_addon, and a resolved no_cap limit forces it back to
// not_applicable regardless of waiver signals.
func normalizeRoomRent(raw *product.RawRoomRent) product.RoomRent {
	out := product.RoomRent{
		LimitType:              product.RoomPercentOfSI,
		ProportionateDeduction: product.DeductionApplies,
	}
	if raw == nil {
		return out
	}

	text := ""
	if raw.Text != nil {
		text = strings.ToLower(*raw.Text)
	}

	switch {
	case strings.Contains(text, "no room") && strings.Contains(text, "cap"):
		out.LimitType = product.RoomNoCap
	case firstPercent(text) != nil:
		out.LimitType = product.RoomPercentOfSI
		out.LimitValue = firstPercent(text)
		out.ProportionateDeduction = product.DeductionApplies
	case strings.Contains(text, "single") && strings.Contains(text, "private"):
		out.LimitType = product.RoomSinglePrivate
		out.ProportionateDeduction = product.DeductionApplies
	case strings.Contains(text, "twin"):
		out.LimitType = product.RoomTwinSharing
		out.ProportionateDeduction = product.DeductionApplies
	case hasCurrencyMarker(text):
		out.LimitType = product.RoomRupeeCap
		out.LimitValue = parseAmount(text)
		out.ProportionateDeduction = product.DeductionApplies
	}

	if raw.ICUText != nil {
		icuType, icuValue := normalizeICULimit(*raw.ICUText)
		out.ICULimitType = icuType
		out.ICULimitValue = icuValue
	}

	addon := ""
	if raw.AddonInfo != nil {
		addon = strings.ToLower(*raw.AddonInfo)
	}
	if strings.Contains(text, "waiver") || strings.Contains(addon, "waiver") {
		out.ProportionateDeduction = product.DeductionWaivedAddon
	}
	// no_cap wins over any waiver signal
	if out.LimitType == product.RoomNoCap {
		out.ProportionateDeduction = product.DeductionNotApplicable
	}

	out.RoomModifierOption = (raw.ModifierFlag != nil && *raw.ModifierFlag) ||
		mentionsOptionalUpgrade(text)
	return out
}

// normalizeICULimit parses ICU limit text independently of the room text,
// with its own no-cap / percent / rupee precedence.
func normalizeICULimit(text string) (*string, *float64) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "no") && strings.Contains(lower, "cap"):
		t := product.RoomNoCap
		return &t, nil
	case firstPercent(lower) != nil:
		t := product.RoomPercentOfSI
		return &t, firstPercent(lower)
	case hasCurrencyMarker(lower):
		t := product.RoomRupeeCap
		return &t, parseAmount(lower)
	}
	return nil, nil
}

// mentionsOptionalUpgrade matches "optional ... upgrade" in either word order.
func mentionsOptionalUpgrade(text string) bool {
	optional := strings.Index(text, "optional")
	upgrade := strings.Index(text, "upgrade")
	return optional >= 0 && upgrade >= 0
}
