// Package scoring evaluates canonical products against a fixed set of
// weighted quality criteria, producing an auditable per-parameter breakdown,
// a weighted overall score, and a letter grade.
package scoring

import (
	"github.com/policyatlas/covergrade/internal/product"
)

// RatingBand maps a minimum score to a rating. Bands are kept sorted
// ascending by threshold; the highest band a score meets wins.
type RatingBand struct {
	Threshold float64
	Rating    string
}

// GradeBand maps a minimum weighted score to a letter grade. Bands are
// kept sorted descending by minimum; the first band a score meets wins.
type GradeBand struct {
	Min   float64
	Grade string
}

// Config is the immutable rule set injected into a Scorer. Alternate rule
// sets can be swapped in for testing; the tables are never mutated.
type Config struct {
	Weights     map[string]float64
	RatingBands []RatingBand
	GradeBands  []GradeBand
	Version     string
}

// DefaultConfig returns the production rule set. Weights cover exactly the
// eleven parameters and sum to 1.0.
func DefaultConfig() Config {
	return Config{
		Weights: map[string]float64{
			product.ParamRoomRent:       0.15,
			product.ParamPrePost:        0.10,
			product.ParamDaycare:        0.05,
			product.ParamAyush:          0.05,
			product.ParamDomiciliary:    0.05,
			product.ParamNCB:            0.10,
			product.ParamRecharge:       0.10,
			product.ParamCopay:          0.125,
			product.ParamCataract:       0.075,
			product.ParamWaitingPeriods: 0.15,
			product.ParamTopUp:          0.05,
		},
		RatingBands: []RatingBand{
			{Threshold: 0, Rating: product.RatingBad},
			{Threshold: 40, Rating: product.RatingOK},
			{Threshold: 70, Rating: product.RatingGood},
		},
		GradeBands: []GradeBand{
			{Min: 90, Grade: product.GradeAPlus},
			{Min: 75, Grade: product.GradeA},
			{Min: 60, Grade: product.GradeB},
			{Min: 45, Grade: product.GradeC},
			{Min: 0, Grade: product.GradeD},
		},
		Version: "1.0.0",
	}
}

// Rate classifies a numeric score into a rating by the config's bands:
// the highest band whose threshold the score meets or exceeds.
func (c Config) Rate(score float64) string {
	rating := c.RatingBands[0].Rating
	for _, band := range c.RatingBands {
		if score >= band.Threshold {
			rating = band.Rating
		}
	}
	return rating
}

// Grade resolves the letter grade for a weighted score: the first band,
// highest minimum first, the score meets or exceeds. The lowest grade is
// the fallback, so the ladder is total over [0,100].
func (c Config) Grade(weighted float64) string {
	for _, band := range c.GradeBands {
		if weighted >= band.Min {
			return band.Grade
		}
	}
	return c.GradeBands[len(c.GradeBands)-1].Grade
}
