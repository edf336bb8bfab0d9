package quiz

import (
	"math"
	"math/big"
	"strings"
)

// Matcher decides whether a submitted answer matches the accepted one.
// The policy is pluggable and may evolve independently of the selection
// and engagement core.
type Matcher func(submitted, accepted string) bool

// Match is the default policy: trimmed case-insensitive equality, then
// numeric equivalence (fractions vs decimals), then known synonym sets.
func Match(submitted, accepted string) bool {
	a := normalize(submitted)
	b := normalize(accepted)
	if a == b {
		return true
	}
	if numericEquivalent(a, b) {
		return true
	}
	return synonymEquivalent(a, b)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tolerance for fraction-vs-decimal comparisons: students type truncated
// decimals like 0.333 for 1/3.
const mixedTol = 1e-3

func numericEquivalent(a, b string) bool {
	ra, aOK := parseRat(a)
	rb, bOK := parseRat(b)
	if !aOK || !bOK {
		return false
	}
	if ra.Cmp(rb) == 0 {
		return true
	}
	fa, _ := ra.Float64()
	fb, _ := rb.Float64()
	if isFraction(a) != isFraction(b) {
		return math.Abs(fa-fb) < mixedTol
	}
	return math.Abs(fa-fb) < 1e-9
}

// parseRat accepts "1/2", "0.5", "2", "-3/4". big.Rat keeps fraction and
// decimal comparisons exact where the representations agree.
func parseRat(s string) (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

func isFraction(s string) bool { return strings.Contains(s, "/") }

// Known interchangeable answers. Deliberately small; extend per bank.
var synonymSets = [][]string{
	{"yes", "true"},
	{"no", "false"},
}

func synonymEquivalent(a, b string) bool {
	for _, set := range synonymSets {
		inA, inB := false, false
		for _, w := range set {
			if w == a {
				inA = true
			}
			if w == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}
