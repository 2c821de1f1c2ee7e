package normalize

import (
	"testing"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"plain number", "500000", fptr(500000)},
		{"decimal", "1.5", fptr(1.5)},
		{"currency prefix", "Rs. 5,00,000/-", fptr(500000)},
		{"rupee symbol", "₹25000", fptr(25000)},
		{"unit suffix", "30 days", fptr(30)},
		{"no digits", "not covered", nil},
		{"empty", "", nil},
		{"lone dot", ".", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceFloat(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("coerceFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("coerceFloat(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestCoerceIntRounds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"29.6", 30},
		{"30.4", 30},
		{"60", 60},
	}
	for _, tt := range tests {
		got := coerceInt(tt.in)
		if got == nil || *got != tt.want {
			t.Errorf("coerceInt(%q) = %v, want %d", tt.in, got, tt.want)
		}
	}
	if got := coerceInt("n/a"); got != nil {
		t.Errorf("coerceInt(n/a) = %v, want nil", *got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"lakh", "5 lakh", fptr(500000)},
		{"lac spelling", "2 lac", fptr(200000)},
		{"crore", "1.5 crore", fptr(15000000)},
		{"absolute", "Rs 40000", fptr(40000)},
		{"unparseable", "up to SI", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestFirstPercent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"single", "capped at 1% of SI", fptr(1)},
		{"first of two", "10% per year up to 50%", fptr(10)},
		{"decimal", "2.5 % of sum insured", fptr(2.5)},
		{"none", "no cap", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstPercent(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("firstPercent(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("firstPercent(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestPercentAfterMax(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"maximum", "10% per year, maximum 100%", fptr(100)},
		{"max abbreviation", "50% bonus max of 200%", fptr(200)},
		{"no max clause", "10% per year", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentAfterMax(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("percentAfterMax(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("percentAfterMax(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestHasCurrencyMarker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"₹5000 per day", true},
		{"rs. 4000", true},
		{"5 lakh cover", true},
		{"2% of SI", false},
		{"twin sharing", false},
	}
	for _, tt := range tests {
		if got := hasCurrencyMarker(tt.in); got != tt.want {
			t.Errorf("hasCurrencyMarker(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func fptr(f float64) *float64 { return &f }
