// Package normalize converts loosely-structured raw extracts into
// canonical, schema-conformant product records. Normalization is total:
// every input yields a structurally complete record, with unparseable
// fragments resolving to explicit nulls or conservative defaults, never
// errors.
package normalize

import (
	"strings"

	"github.com/policyatlas/covergrade/internal/product"
	"github.com/policyatlas/covergrade/internal/textutil"
)

// Normalize maps a raw extract to a canonical product. Pure and
// side-effect free; repeated calls over the same input produce identical
// records.
func Normalize(raw product.RawExtract) product.CanonicalProduct {
	isTopUp := raw.Product.IsTopUp != nil && *raw.Product.IsTopUp

	return product.CanonicalProduct{
		Product:         normalizeProductInfo(raw.Product, isTopUp),
		SumInsured:      normalizeSumInsured(raw.SumInsured),
		Deductible:      normalizeDeductible(raw.Deductible, isTopUp),
		RoomRent:        normalizeRoomRent(raw.RoomRent),
		Hospitalization: normalizeHospitalization(raw.Hospitalization),
		Transport:       normalizeTransport(raw.Transport),
		OrganDonor:      normalizeOrganDonor(raw.OrganDonor),
		Bonuses:         normalizeBonuses(raw.Bonuses),
		WaitingPeriods:  normalizeWaitingPeriods(raw.WaitingPeriods),
		Copay:           normalizeCopay(raw.Copay),
		Sublimits: product.Sublimits{
			Cataract:        normalizeCataract(raw.Sublimits),
			DiseaseSpecific: normalizeDiseaseSublimits(raw.Sublimits),
		},
		ValueAdds:      normalizeValueAdds(raw.ValueAdds),
		TopUpSpecifics: normalizeTopUp(raw.TopUp, isTopUp),
		Provenance:     normalizeProvenance(raw.Provenance),
		Notes:          normalizeNotes(raw.Notes),
	}
}

func normalizeProductInfo(raw product.RawProductInfo, isTopUp bool) product.ProductInfo {
	return product.ProductInfo{
		Insurer:    textutil.CollapseWhitespace(raw.Insurer),
		PlanName:   textutil.CollapseWhitespace(raw.PlanName),
		Variant:    trimmedOrNil(raw.Variant),
		UIN:        trimmedOrNil(raw.UIN),
		PolicyType: trimmedOrNil(raw.PolicyType),
		IsTopUp:    isTopUp,
		Geography:  trimmedOrNil(raw.Geography),
	}
}

func normalizeHospitalization(raw *product.RawHospitalization) product.Hospitalization {
	out := product.Hospitalization{
		Daycare: product.DaycareUnspecified,
		Ayush:   product.AyushLimit{LimitType: product.AyushNotCovered},
	}
	if raw == nil {
		return out
	}
	out.Daycare = normalizeDaycare(raw.DaycareText)
	if raw.PreDays != nil {
		out.PreDays = coerceInt(raw.PreDays.String())
	}
	if raw.PostDays != nil {
		out.PostDays = coerceInt(raw.PostDays.String())
	}
	out.Domiciliary = normalizeDomiciliary(raw.Domiciliary)
	out.Ayush = normalizeAyush(raw.AyushText, raw.AyushLimit)
	return out
}

func normalizeDomiciliary(raw *product.RawDomiciliary) product.Domiciliary {
	var out product.Domiciliary
	if raw == nil {
		return out
	}
	if raw.Covered != nil {
		out.Covered = *raw.Covered
	}
	if raw.MinDays != nil {
		out.MinDays = coerceInt(raw.MinDays.String())
	}
	out.HasNegativeList = raw.HasNegativeList
	return out
}

func normalizeTransport(raw *product.RawTransport) product.TransportCover {
	var out product.TransportCover
	if raw == nil {
		return out
	}
	if raw.AmbulanceAmount != nil {
		out.AmbulanceLimit = parseAmount(raw.AmbulanceAmount.String())
	}
	if out.AmbulanceLimit == nil && raw.AmbulanceText != nil {
		out.AmbulanceLimit = parseAmount(*raw.AmbulanceText)
	}
	out.AmbulanceCovered = out.AmbulanceLimit != nil ||
		(raw.AmbulanceText != nil && strings.TrimSpace(*raw.AmbulanceText) != "" &&
			!strings.Contains(strings.ToLower(*raw.AmbulanceText), "not covered"))
	out.AirAmbulance = raw.AirAmbulance
	return out
}

func normalizeOrganDonor(raw *product.RawOrganDonor) product.OrganDonor {
	var out product.OrganDonor
	if raw == nil {
		return out
	}
	if raw.Covered != nil {
		out.Covered = *raw.Covered
	} else if raw.Text != nil {
		lower := strings.ToLower(*raw.Text)
		out.Covered = strings.TrimSpace(lower) != "" && !strings.Contains(lower, "not covered")
	}
	if raw.Limit != nil {
		out.Limit = parseAmount(raw.Limit.String())
	}
	if out.Limit == nil && raw.Text != nil {
		out.Limit = parseAmount(*raw.Text)
	}
	if !out.Covered {
		out.Limit = nil
	}
	return out
}

func normalizeBonuses(raw *product.RawBonuses) product.Bonuses {
	if raw == nil {
		return product.Bonuses{
			Recharge: product.Recharge{Mode: product.RechargeNA},
		}
	}
	return product.Bonuses{
		NoClaimBonus: normalizeNCB(raw.NCBText),
		Recharge:     normalizeRecharge(raw.RechargeText),
	}
}

func normalizeValueAdds(raw *product.RawValueAdds) product.ValueAdds {
	out := product.ValueAdds{Others: []string{}}
	if raw == nil {
		return out
	}
	out.AnnualHealthCheckup = raw.AnnualHealthCheckup != nil && *raw.AnnualHealthCheckup
	out.OPDCover = raw.OPDCover != nil && *raw.OPDCover
	out.WellnessProgram = raw.WellnessProgram != nil && *raw.WellnessProgram
	out.TeleConsultation = raw.TeleConsultation != nil && *raw.TeleConsultation
	out.Others = textutil.UniqueStrings(raw.Others)
	if out.Others == nil {
		out.Others = []string{}
	}
	return out
}

// normalizeTopUp gates top-up-only fields on the resolved top-up flag:
// howDeductibleApplies and roomRuleOnTopUp are null for non-top-up
// products no matter what the raw extract claims.
func normalizeTopUp(raw *product.RawTopUp, isTopUp bool) product.TopUpSpecifics {
	out := product.TopUpSpecifics{CoverageAboveDeductible: []string{}}
	if raw == nil || !isTopUp {
		return out
	}
	if raw.HowDeductibleApplies != nil {
		how := strings.ToLower(strings.TrimSpace(*raw.HowDeductibleApplies))
		switch how {
		case product.TopUpAggregateYear, product.TopUpPerClaim:
			out.HowDeductibleApplies = &how
		}
	}
	out.RoomRuleOnTopUp = trimmedOrNil(raw.RoomRuleOnTopUp)
	out.CoverageAboveDeductible = textutil.UniqueStrings(raw.CoverageAboveDeductible)
	if out.CoverageAboveDeductible == nil {
		out.CoverageAboveDeductible = []string{}
	}
	return out
}

// normalizeProvenance carries the source identity over and resolves the
// extraction confidence. Values outside [0,1] are treated as unparseable
// and take the default, keeping the canonical record in range.
func normalizeProvenance(raw product.RawProvenance) product.Provenance {
	out := product.Provenance{
		SourceType:           textutil.CollapseWhitespace(raw.SourceType),
		SourceName:           textutil.CollapseWhitespace(raw.SourceName),
		SourceDate:           trimmedOrNil(raw.SourceDate),
		ExtractionConfidence: product.DefaultExtractionConfidence,
	}
	if c := raw.ExtractionConfidence; c != nil && *c >= 0 && *c <= 1 {
		out.ExtractionConfidence = *c
	}
	return out
}

// normalizeNotes trims, filters, deduplicates and pipe-joins raw note
// fragments; nil when nothing survives.
func normalizeNotes(notes []string) *string {
	joined := textutil.JoinPipe(notes)
	if joined == "" {
		return nil
	}
	return &joined
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
