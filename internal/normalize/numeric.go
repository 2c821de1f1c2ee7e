package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRe     = regexp.MustCompile(`[^0-9.]`)
	numberRe     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	percentRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	maxPercentRe = regexp.MustCompile(`(?i)max(?:imum)?[^%\d]*(\d+(?:\.\d+)?)\s*%`)
)

// coerceFloat strips every non-digit, non-decimal-point character and parses
// the remainder. Returns nil when nothing parseable survives.
func coerceFloat(s string) *float64 {
	cleaned := digitsRe.ReplaceAllString(s, "")
	// Multiple dots can survive stripping ("Rs. 5,00,000/-"); keep the
	// first numeric run instead of failing the whole value.
	if strings.Count(cleaned, ".") > 1 {
		cleaned = numberRe.FindString(cleaned)
	}
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}

// coerceInt coerces like coerceFloat and rounds to the nearest integer.
func coerceInt(s string) *int {
	f := coerceFloat(s)
	if f == nil {
		return nil
	}
	n := int(math.Round(*f))
	return &n
}

// parseAmount parses a rupee amount, applying Indian unit words so
// "5 lakh" and "1.5 crore" resolve to absolute values.
func parseAmount(s string) *float64 {
	f := coerceFloat(s)
	if f == nil {
		return nil
	}
	v := *f
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "crore"):
		v *= 1e7
	case strings.Contains(lower, "lakh"), strings.Contains(lower, "lac"):
		v *= 1e5
	case strings.Contains(lower, "thousand"):
		v *= 1e3
	}
	return &v
}

// firstPercent extracts the first percent literal from text, nil when absent.
func firstPercent(s string) *float64 {
	m := percentRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &f
}

// percentAfterMax extracts a percent literal following "max"/"maximum".
func percentAfterMax(s string) *float64 {
	m := maxPercentRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &f
}

// hasCurrencyMarker reports whether text mentions a rupee amount by symbol
// or unit word.
func hasCurrencyMarker(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(s, "₹") ||
		strings.Contains(lower, "rs.") ||
		strings.Contains(lower, "rs ") ||
		strings.Contains(lower, "inr") ||
		strings.Contains(lower, "lakh") ||
		strings.Contains(lower, "lac") ||
		strings.Contains(lower, "crore")
}
