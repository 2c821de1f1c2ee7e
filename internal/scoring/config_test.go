package scoring

import (
	"math"
	"testing"

	"github.com/policyatlas/covergrade/internal/product"
)

func TestDefaultWeights(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Weights) != len(product.ParameterOrder) {
		t.Errorf("got %d weights, want %d", len(cfg.Weights), len(product.ParameterOrder))
	}
	sum := 0.0
	for _, param := range product.ParameterOrder {
		w, ok := cfg.Weights[param]
		if !ok {
			t.Errorf("missing weight for %q", param)
			continue
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestRate(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score float64
		want  string
	}{
		{0, product.RatingBad},
		{39.99, product.RatingBad},
		{40, product.RatingOK},
		{69.99, product.RatingOK},
		{70, product.RatingGood},
		{100, product.RatingGood},
	}
	for _, tt := range tests {
		if got := cfg.Rate(tt.score); got != tt.want {
			t.Errorf("Rate(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGrade(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		weighted float64
		want     string
	}{
		{100, product.GradeAPlus},
		{90, product.GradeAPlus},
		{89.99, product.GradeA},
		{75, product.GradeA},
		{74.99, product.GradeB},
		{60, product.GradeB},
		{59.99, product.GradeC},
		{45, product.GradeC},
		{44.99, product.GradeD},
		{0, product.GradeD},
	}
	for _, tt := range tests {
		if got := cfg.Grade(tt.weighted); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.weighted, got, tt.want)
		}
	}
}
