package normalize

import (
	"sort"
	"strings"

	"github.com/policyatlas/covergrade/internal/product"
)

// normalizeSumInsured resolves the base sum insured and the band set.
// Bands are deduplicated, sorted ascending, and always include the base.
// A non-positive base is treated as unparseable so the canonical record
// always carries a usable denominator.
func normalizeSumInsured(raw *product.RawSumInsured) product.SumInsured {
	base := float64(product.DefaultBaseSI)
	var rawBands []product.FlexNumber
	if raw != nil {
		if raw.Base != nil {
			if v := parseAmount(raw.Base.String()); v != nil && *v > 0 {
				base = *v
			}
		}
		rawBands = raw.Bands
	}

	seen := map[float64]bool{base: true}
	bands := []float64{base}
	for _, b := range rawBands {
		v := parseAmount(b.String())
		if v == nil || seen[*v] {
			continue
		}
		seen[*v] = true
		bands = append(bands, *v)
	}
	sort.Float64s(bands)
	return product.SumInsured{BaseSI: base, AvailableBands: bands}
}

// normalizeDeductible resolves the deductible block. Applies defaults to
// the top-up flag; per_year is assumed for any applying deductible that is
// not explicitly per_claim; aggregateApplies defaults to true for per_year.
func normalizeDeductible(raw *product.RawDeductible, isTopUp bool) product.Deductible {
	out := product.Deductible{Applies: isTopUp}
	if raw == nil {
		if out.Applies {
			t := product.DeductiblePerYear
			out.Type = &t
			agg := true
			out.AggregateApplies = &agg
		}
		return out
	}

	if raw.Applies != nil {
		out.Applies = *raw.Applies
	}
	if raw.Amount != nil {
		out.Amount = parseAmount(raw.Amount.String())
	}

	switch {
	case raw.Type != nil && strings.EqualFold(strings.TrimSpace(*raw.Type), product.DeductiblePerClaim):
		t := product.DeductiblePerClaim
		out.Type = &t
	case out.Applies:
		t := product.DeductiblePerYear
		out.Type = &t
	}

	if out.Type != nil && *out.Type == product.DeductiblePerYear {
		agg := true
		if raw.AggregateApplies != nil {
			agg = *raw.AggregateApplies
		}
		out.AggregateApplies = &agg
	} else {
		out.AggregateApplies = raw.AggregateApplies
	}
	return out
}

// normalizeWaitingPeriods applies market-standard defaults when the raw
// block is silent: 30 days initial, 24 months specific ailments, 48 months
// pre-existing disease.
func normalizeWaitingPeriods(raw *product.RawWaitingPeriods) product.WaitingPeriods {
	out := product.WaitingPeriods{
		InitialDays:            product.DefaultInitialWaitingDays,
		SpecificAilmentsMonths: product.DefaultSpecificAilmentsMonths,
		PEDMonths:              product.DefaultPEDMonths,
	}
	if raw == nil {
		return out
	}
	if raw.InitialDays != nil {
		if n := coerceInt(raw.InitialDays.String()); n != nil {
			out.InitialDays = *n
		}
	}
	if raw.SpecificAilmentsMonths != nil {
		if n := coerceInt(raw.SpecificAilmentsMonths.String()); n != nil {
			out.SpecificAilmentsMonths = *n
		}
	}
	if raw.PEDMonths != nil {
		if n := coerceInt(raw.PEDMonths.String()); n != nil {
			out.PEDMonths = *n
		}
	}
	if raw.PEDReductionAvailable != nil {
		out.PEDReductionAvailable = *raw.PEDReductionAvailable
	}
	if raw.SpecificReductionAvailable != nil {
		out.SpecificReductionAvailable = *raw.SpecificReductionAvailable
	}
	return out
}

// copayVocabulary maps raw copay type spellings to the controlled set.
var copayVocabulary = map[string]string{
	"none":             product.CopayNone,
	"age":              product.CopayAge,
	"zone":             product.CopayZone,
	"network":          product.CopayNetwork,
	"disease":          product.CopayDisease,
	"disease_specific": product.CopayDisease,
}

// normalizeCopay maps the mandatory copay type through a controlled
// vocabulary, defaulting to none. Percent is null whenever the type is none.
func normalizeCopay(raw *product.RawCopay) product.CopayAndZones {
	out := product.CopayAndZones{MandatoryCopayType: product.CopayNone}
	if raw == nil {
		return out
	}
	if raw.MandatoryType != nil {
		key := strings.ToLower(strings.TrimSpace(*raw.MandatoryType))
		if mapped, ok := copayVocabulary[key]; ok {
			out.MandatoryCopayType = mapped
		}
	}
	if out.MandatoryCopayType != product.CopayNone && raw.Percent != nil {
		out.MandatoryCopayPercent = coerceFloat(raw.Percent.String())
	}
	out.ZoneBasedPricing = raw.ZoneBased
	return out
}

// normalizeCataract classifies the cataract sublimit. Unrecognized text
// falls through to not_applicable; that default can mask malformed but
// intended sublimit wording, so the rationale stays in the canonical type
// rather than a guess.
func normalizeCataract(raw *product.RawSublimits) product.CataractSublimit {
	out := product.CataractSublimit{LimitType: product.CataractNotApplicable}
	if raw == nil {
		return out
	}

	text := ""
	if raw.CataractText != nil {
		text = strings.ToLower(*raw.CataractText)
	}
	if strings.Contains(text, "no sub-limit") || strings.Contains(text, "no sublimit") ||
		strings.Contains(text, "not applicable") {
		return out
	}

	if pct := firstPercent(text); pct != nil {
		perEye := strings.Contains(text, "per eye")
		return product.CataractSublimit{
			LimitType:  product.CataractPercentOfSI,
			LimitValue: pct,
			PerEye:     &perEye,
		}
	}

	var amount *float64
	if raw.CataractAmount != nil {
		amount = parseAmount(raw.CataractAmount.String())
	}
	if amount == nil && text != "" {
		amount = parseAmount(text)
	}
	if amount != nil {
		perEye := strings.Contains(text, "per eye")
		return product.CataractSublimit{
			LimitType:  product.CataractRupeeCap,
			LimitValue: amount,
			PerEye:     &perEye,
		}
	}
	return out
}

// normalizeDiseaseSublimits carries over named disease-specific sublimits
// with coerced amounts.
func normalizeDiseaseSublimits(raw *product.RawSublimits) []product.DiseaseSpecificSublimit {
	out := []product.DiseaseSpecificSublimit{}
	if raw == nil {
		return out
	}
	for _, d := range raw.DiseaseSpecific {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		item := product.DiseaseSpecificSublimit{Name: name}
		if d.Amount != nil {
			item.LimitValue = parseAmount(d.Amount.String())
		}
		if item.LimitValue == nil && d.Text != nil {
			item.LimitValue = parseAmount(*d.Text)
		}
		out = append(out, item)
	}
	return out
}
