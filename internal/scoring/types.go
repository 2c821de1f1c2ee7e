package scoring

// Evaluation is the scorer's output: per-parameter details in canonical
// order, the weighted overall block, and the rule-set revision that
// produced it. Created fresh per call and never mutated.
type Evaluation struct {
	ProductRef ProductRef    `json:"productRef"`
	Scores     []ScoreDetail `json:"scores"`
	Overall    Overall       `json:"overall"`
	Version    string        `json:"version"`
}

// ProductRef identifies the evaluated product.
type ProductRef struct {
	Insurer  string  `json:"insurer"`
	PlanName string  `json:"planName"`
	Variant  *string `json:"variant"`
}

// ScoreDetail is one parameter's outcome with a human-readable rationale
// describing the contributing facts.
type ScoreDetail struct {
	Parameter string  `json:"parameter"`
	Score     float64 `json:"score"`
	Rating    string  `json:"rating"`
	Rationale string  `json:"rationale"`
}

// Overall aggregates the weighted score (rounded to 2 decimals), the
// letter grade, and optional aggregated notes.
type Overall struct {
	WeightedScore float64 `json:"weightedScore"`
	Grade         string  `json:"grade"`
	Notes         *string `json:"notes"`
}
