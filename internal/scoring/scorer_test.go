package scoring

import (
	"math"
	"testing"

	"github.com/policyatlas/covergrade/internal/product"
)

// baseline is a plain mid-market product: unknown room limit, no bonuses,
// standard waiting periods, no copay.
func baseline() product.CanonicalProduct {
	return product.CanonicalProduct{
		Product: product.ProductInfo{
			Insurer:  "Acme Health",
			PlanName: "Shield",
		},
		SumInsured: product.SumInsured{
			BaseSI:         500000,
			AvailableBands: []float64{500000},
		},
		RoomRent: product.RoomRent{
			LimitType:              product.RoomPercentOfSI,
			ProportionateDeduction: product.DeductionApplies,
		},
		Hospitalization: product.Hospitalization{
			Daycare: product.DaycareUnspecified,
			Ayush:   product.AyushLimit{LimitType: product.AyushNotCovered},
		},
		Bonuses: product.Bonuses{
			Recharge: product.Recharge{Mode: product.RechargeNA},
		},
		WaitingPeriods: product.WaitingPeriods{
			InitialDays:            30,
			SpecificAilmentsMonths: 24,
			PEDMonths:              48,
		},
		Copay: product.CopayAndZones{MandatoryCopayType: product.CopayNone},
		Sublimits: product.Sublimits{
			Cataract:        product.CataractSublimit{LimitType: product.CataractNotApplicable},
			DiseaseSpecific: []product.DiseaseSpecificSublimit{},
		},
		ValueAdds:      product.ValueAdds{Others: []string{}},
		TopUpSpecifics: product.TopUpSpecifics{CoverageAboveDeductible: []string{}},
		Provenance: product.Provenance{
			SourceType:           "brochure",
			SourceName:           "acme-shield.pdf",
			ExtractionConfidence: 0.9,
		},
	}
}

func detailFor(t *testing.T, ev Evaluation, param string) ScoreDetail {
	t.Helper()
	for _, d := range ev.Scores {
		if d.Parameter == param {
			return d
		}
	}
	t.Fatalf("no detail for parameter %q", param)
	return ScoreDetail{}
}

func TestScoreParameterOrder(t *testing.T) {
	ev := NewScorer(DefaultConfig()).Score(baseline())
	if len(ev.Scores) != len(product.ParameterOrder) {
		t.Fatalf("got %d details, want %d", len(ev.Scores), len(product.ParameterOrder))
	}
	for i, param := range product.ParameterOrder {
		if ev.Scores[i].Parameter != param {
			t.Errorf("Scores[%d] = %q, want %q", i, ev.Scores[i].Parameter, param)
		}
	}
	if ev.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", ev.Version)
	}
}

func TestScoreDaycareNotCovered(t *testing.T) {
	p := baseline()
	p.Hospitalization.Daycare = product.DaycareNotCovered
	ev := NewScorer(DefaultConfig()).Score(p)

	d := detailFor(t, ev, product.ParamDaycare)
	if d.Score != 0 {
		t.Errorf("daycare score = %v, want 0", d.Score)
	}
	if d.Rating != product.RatingBad {
		t.Errorf("daycare rating = %q, want %q", d.Rating, product.RatingBad)
	}
}

func TestScoreTopUpComposite(t *testing.T) {
	how := product.TopUpAggregateYear
	p := baseline()
	p.Product.IsTopUp = true
	p.RoomRent.LimitType = product.RoomNoCap
	p.RoomRent.ProportionateDeduction = product.DeductionNotApplicable
	p.TopUpSpecifics = product.TopUpSpecifics{
		HowDeductibleApplies: &how,
		CoverageAboveDeductible: []string{
			product.CoverageIPD, product.CoveragePrePost, product.CoverageDaycare,
		},
	}
	ev := NewScorer(DefaultConfig()).Score(p)

	d := detailFor(t, ev, product.ParamTopUp)
	if d.Score != 100 {
		t.Errorf("topup score = %v, want 100 (85 base + 10 coverage + 5 room rule)", d.Score)
	}
	if d.Rating != product.RatingGood {
		t.Errorf("topup rating = %q, want %q", d.Rating, product.RatingGood)
	}
}

func TestScoreWeightedAggregation(t *testing.T) {
	cfg := DefaultConfig()
	ev := NewScorer(cfg).Score(baseline())

	want := 0.0
	for _, d := range ev.Scores {
		want += d.Score * cfg.Weights[d.Parameter]
	}
	want = math.Round(want*100) / 100
	if ev.Overall.WeightedScore != want {
		t.Errorf("WeightedScore = %v, want %v", ev.Overall.WeightedScore, want)
	}
	if got := cfg.Grade(ev.Overall.WeightedScore); ev.Overall.Grade != got {
		t.Errorf("Grade = %q, want %q", ev.Overall.Grade, got)
	}
}

func TestAggregateNotes(t *testing.T) {
	t.Run("synthesized observations", func(t *testing.T) {
		notes := "manual review pending"
		pct := 10.0
		p := baseline()
		p.Notes = &notes
		p.Copay = product.CopayAndZones{
			MandatoryCopayType:    product.CopayAge,
			MandatoryCopayPercent: &pct,
		}
		ev := NewScorer(DefaultConfig()).Score(p)
		if ev.Overall.Notes == nil {
			t.Fatal("Overall.Notes = nil, want aggregated string")
		}
		want := "manual review pending | No recharge/restore benefit | Mandatory copay: 10% (age)"
		if *ev.Overall.Notes != want {
			t.Errorf("Overall.Notes = %q, want %q", *ev.Overall.Notes, want)
		}
	})

	t.Run("copay without percent", func(t *testing.T) {
		p := baseline()
		p.Bonuses.Recharge.Mode = product.RechargeUnlimited
		p.Copay.MandatoryCopayType = product.CopayZone
		ev := NewScorer(DefaultConfig()).Score(p)
		if ev.Overall.Notes == nil || *ev.Overall.Notes != "Mandatory copay (zone)" {
			t.Errorf("Overall.Notes = %v, want %q", ev.Overall.Notes, "Mandatory copay (zone)")
		}
	})

	t.Run("nil when nothing to report", func(t *testing.T) {
		p := baseline()
		p.Bonuses.Recharge.Mode = product.RechargeOnce
		ev := NewScorer(DefaultConfig()).Score(p)
		if ev.Overall.Notes != nil {
			t.Errorf("Overall.Notes = %q, want nil", *ev.Overall.Notes)
		}
	})
}
