package quiz

import "testing"

func TestMatchExactAndNormalized(t *testing.T) {
	cases := []struct {
		submitted, accepted string
		want                bool
	}{
		{"Paris", "paris", true},
		{"  blue ", "blue", true},
		{"YES", "yes", true},
		{"paris", "london", false},
		{"", "paris", false},
	}
	for _, c := range cases {
		if got := Match(c.submitted, c.accepted); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.submitted, c.accepted, got, c.want)
		}
	}
}

func TestMatchNumericEquivalence(t *testing.T) {
	cases := []struct {
		submitted, accepted string
		want                bool
	}{
		{"0.5", "1/2", true},
		{"1/2", "0.5", true},
		{"4/2", "2", true},
		{"2.0", "2", true},
		{"0.333", "1/3", true}, // truncated decimal within tolerance
		{"0.33", "1/3", false}, // too far off
		{"-3/4", "-0.75", true},
		{"2", "3", false},
		{"0.5", "0.6", false},
		{"0.5", "1/3", false},
		{"one", "1", false}, // words are not parsed as numbers
	}
	for _, c := range cases {
		if got := Match(c.submitted, c.accepted); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.submitted, c.accepted, got, c.want)
		}
	}
}

func TestMatchSynonyms(t *testing.T) {
	cases := []struct {
		submitted, accepted string
		want                bool
	}{
		{"yes", "true", true},
		{"True", "YES", true},
		{"no", "false", true},
		{"yes", "false", false},
		{"yes", "no", false},
	}
	for _, c := range cases {
		if got := Match(c.submitted, c.accepted); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.submitted, c.accepted, got, c.want)
		}
	}
}
