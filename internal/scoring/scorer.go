package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/policyatlas/covergrade/internal/product"
	"github.com/policyatlas/covergrade/internal/textutil"
)

// paramFunc is one parameter's scoring rule: a pure function from the
// canonical record to a score in [0,100] and a rationale describing the
// contributing facts. Every branch resolves to a number; no rule may fail.
type paramFunc func(product.CanonicalProduct) (float64, string)

var paramFuncs = map[string]paramFunc{
	product.ParamRoomRent:       scoreRoomRent,
	product.ParamPrePost:        scorePrePost,
	product.ParamDaycare:        scoreDaycare,
	product.ParamAyush:          scoreAyush,
	product.ParamDomiciliary:    scoreDomiciliary,
	product.ParamNCB:            scoreNCB,
	product.ParamRecharge:       scoreRecharge,
	product.ParamCopay:          scoreCopay,
	product.ParamCataract:       scoreCataract,
	product.ParamWaitingPeriods: scoreWaitingPeriods,
	product.ParamTopUp:          scoreTopUp,
}

// Scorer evaluates canonical products under an injected rule set.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer for the given config. Use DefaultConfig for
// the production rule set.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates a canonical product. The product is expected to be
// schema-valid; validation is the caller's responsibility between
// normalization and scoring. Pure and deterministic.
func (s *Scorer) Score(p product.CanonicalProduct) Evaluation {
	details := make([]ScoreDetail, 0, len(product.ParameterOrder))
	weighted := 0.0
	for _, param := range product.ParameterOrder {
		score, rationale := paramFuncs[param](p)
		details = append(details, ScoreDetail{
			Parameter: param,
			Score:     score,
			Rating:    s.cfg.Rate(score),
			Rationale: rationale,
		})
		weighted += score * s.cfg.Weights[param]
	}
	weighted = math.Round(weighted*100) / 100

	return Evaluation{
		ProductRef: ProductRef{
			Insurer:  p.Product.Insurer,
			PlanName: p.Product.PlanName,
			Variant:  p.Product.Variant,
		},
		Scores: details,
		Overall: Overall{
			WeightedScore: weighted,
			Grade:         s.cfg.Grade(weighted),
			Notes:         s.aggregateNotes(p),
		},
		Version: s.cfg.Version,
	}
}

// aggregateNotes combines the canonical record's own notes with synthesized
// observations, deduplicated and pipe-joined; nil when empty.
func (s *Scorer) aggregateNotes(p product.CanonicalProduct) *string {
	var fragments []string
	if p.Notes != nil {
		fragments = append(fragments, strings.Split(*p.Notes, " | ")...)
	}
	if p.Bonuses.Recharge.Mode == product.RechargeNA {
		fragments = append(fragments, "No recharge/restore benefit")
	}
	if p.Copay.MandatoryCopayType != product.CopayNone {
		if p.Copay.MandatoryCopayPercent != nil {
			fragments = append(fragments, fmt.Sprintf("Mandatory copay: %.4g%% (%s)",
				*p.Copay.MandatoryCopayPercent, p.Copay.MandatoryCopayType))
		} else {
			fragments = append(fragments, fmt.Sprintf("Mandatory copay (%s)", p.Copay.MandatoryCopayType))
		}
	}
	joined := textutil.JoinPipe(fragments)
	if joined == "" {
		return nil
	}
	return &joined
}
