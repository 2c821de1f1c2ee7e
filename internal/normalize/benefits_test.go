package normalize

import (
	"testing"

	"github.com/policyatlas/covergrade/internal/product"
)

func TestNormalizeAyush(t *testing.T) {
	limit := product.FlexNumber("50000")
	tests := []struct {
		name      string
		text      *string
		limit     *product.FlexNumber
		wantType  string
		wantValue *float64
	}{
		{"absent everything", nil, nil, product.AyushNotCovered, nil},
		{"explicit not covered", sptr("AYUSH not covered"), nil, product.AyushNotCovered, nil},
		{"up to SI", sptr("Covered up to Sum Insured"), nil, product.AyushUpToSI, nil},
		{"up to si phrase", sptr("ayush covered up to SI"), nil, product.AyushUpToSI, nil},
		{"percent", sptr("AYUSH up to 50% of SI"), nil, product.AyushPercent, fptr(50)},
		{"numeric only", nil, &limit, product.AyushRupeeCap, fptr(50000)},
		{"covered but unclassified", sptr("Covered at network hospitals"), nil, product.AyushUpToSI, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeAyush(tt.text, tt.limit)
			if got.LimitType != tt.wantType {
				t.Errorf("LimitType = %q, want %q", got.LimitType, tt.wantType)
			}
			if (got.LimitValue == nil) != (tt.wantValue == nil) {
				t.Fatalf("LimitValue = %v, want %v", got.LimitValue, tt.wantValue)
			}
			if got.LimitValue != nil && *got.LimitValue != *tt.wantValue {
				t.Errorf("LimitValue = %v, want %v", *got.LimitValue, *tt.wantValue)
			}
		})
	}
}

func TestNormalizeRecharge(t *testing.T) {
	tests := []struct {
		name            string
		text            *string
		wantMode        string
		wantSameIllness *bool
	}{
		{"absent", nil, product.RechargeNA, nil},
		{"unlimited", sptr("Unlimited restoration of sum insured"), product.RechargeUnlimited, bptr(false)},
		{"twice", sptr("Recharges twice per policy year"), product.RechargeTwice, bptr(false)},
		{"once", sptr("Restores once a year"), product.RechargeOnce, bptr(false)},
		{"one-time", sptr("One-time recharge benefit"), product.RechargeOnce, bptr(false)},
		{"one time spaced", sptr("one time restore"), product.RechargeOnce, bptr(false)},
		{"same illness allowed", sptr("Restores once, usable for the same illness"), product.RechargeOnce, bptr(true)},
		{"unmatched", sptr("restore benefit as per terms"), product.RechargeNA, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeRecharge(tt.text)
			if got.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", got.Mode, tt.wantMode)
			}
			if (got.SameIllnessAllowed == nil) != (tt.wantSameIllness == nil) {
				t.Fatalf("SameIllnessAllowed = %v, want %v", got.SameIllnessAllowed, tt.wantSameIllness)
			}
			if got.SameIllnessAllowed != nil && *got.SameIllnessAllowed != *tt.wantSameIllness {
				t.Errorf("SameIllnessAllowed = %v, want %v", *got.SameIllnessAllowed, *tt.wantSameIllness)
			}
		})
	}
}

func TestNormalizeNCB(t *testing.T) {
	tests := []struct {
		name        string
		text        *string
		wantAccrual *float64
		wantMax     *float64
		wantImpact  *string
	}{
		{"absent", nil, nil, nil, nil},
		{
			name:        "accrual with explicit max",
			text:        sptr("Bonus of 50% per claim-free year, maximum 100% of SI"),
			wantAccrual: fptr(50),
			wantMax:     fptr(100),
		},
		{
			name:        "accrual with default cap",
			text:        sptr("NCB of 10% per year"),
			wantAccrual: fptr(10),
			wantMax:     fptr(20),
		},
		{
			name:        "reduces on claim",
			text:        sptr("25% bonus, reduces by same rate on claim"),
			wantAccrual: fptr(25),
			wantMax:     fptr(50),
			wantImpact:  sptr(product.NCBReduces),
		},
		{
			name:        "protected bonus",
			text:        sptr("Bonus of 20% per year, protected against claims"),
			wantAccrual: fptr(20),
			wantMax:     fptr(40),
			wantImpact:  sptr(product.NCBNoImpact),
		},
		{
			name:        "no impact phrase",
			text:        sptr("Bonus 10% with no impact of claims"),
			wantAccrual: fptr(10),
			wantMax:     fptr(20),
			wantImpact:  sptr(product.NCBNoImpact),
		},
		{"text without percent", sptr("bonus applicable"), nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeNCB(tt.text)
			checkFloatPtr(t, "AccrualPercent", got.AccrualPercent, tt.wantAccrual)
			checkFloatPtr(t, "MaxPercent", got.MaxPercent, tt.wantMax)
			if (got.ClaimImpact == nil) != (tt.wantImpact == nil) {
				t.Fatalf("ClaimImpact = %v, want %v", got.ClaimImpact, tt.wantImpact)
			}
			if got.ClaimImpact != nil && *got.ClaimImpact != *tt.wantImpact {
				t.Errorf("ClaimImpact = %q, want %q", *got.ClaimImpact, *tt.wantImpact)
			}
		})
	}
}

func TestNormalizeDaycare(t *testing.T) {
	tests := []struct {
		name string
		text *string
		want string
	}{
		{"absent", nil, product.DaycareUnspecified},
		{"blank", sptr("  "), product.DaycareUnspecified},
		{"not covered", sptr("Daycare not covered"), product.DaycareNotCovered},
		{"all procedures", sptr("All daycare procedures covered"), product.DaycareAllCovered},
		{"extensive count", sptr("586 daycare procedures"), product.DaycareExtensiveList},
		{"limited count", sptr("140 listed procedures"), product.DaycareLimitedList},
		{"listed without count", sptr("listed procedures only"), product.DaycareLimitedList},
		{"unparseable", sptr("as per terms"), product.DaycareUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDaycare(tt.text); got != tt.want {
				t.Errorf("normalizeDaycare() = %q, want %q", got, tt.want)
			}
		})
	}
}

func checkFloatPtr(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}
