package opine

import (
	"math"
	"testing"
)

func TestPhraseMatch(t *testing.T) {
	tests := []struct {
		text     string
		wantBias float64
		desc     string
	}{
		{"this is utter rubbish", -0.2, "Nested negative phrases both count"},
		{"an excellent masterpiece", 0.2, "Two positive phrases"},
		{"boring tedious dull bland mediocre", -0.3, "Negative bias caps at three hits"},
		{"a perfectly ordinary sentence", 0, "No phrases at all"},
		{"excellent but boring", 0, "Balanced hits cancel"},
	}

	pt := newPhraseTable()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := pt.match(tt.text)
			if math.Abs(got.Bias-tt.wantBias) > 1e-9 {
				t.Errorf("Text: %q\nExpected bias %.2f\nGot: %.2f (pos=%d neg=%d)",
					tt.text, tt.wantBias, got.Bias, got.PositiveHits, got.NegativeHits)
			}
		})
	}
}

func TestPhraseHopeDisappointment(t *testing.T) {
	tests := []struct {
		text string
		want bool
		desc string
	}{
		{"i remember loving this as a kid but it broke after a week", true, "Nostalgic lead with failure"},
		{"i was hoping for something special but what a disappointment", true, "Expectation lead with letdown"},
		{"hoping for a sunny weekend at the beach", false, "Lead without an outcome"},
		{"it broke so we replaced it", false, "Outcome without a lead"},
		{"it broke long before i started hoping", false, "Outcome must follow the lead"},
	}

	pt := newPhraseTable()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := pt.hopeDisappointment(tt.text); got != tt.want {
				t.Errorf("Text: %q\nExpected %v, got %v", tt.text, tt.want, got)
			}
		})
	}
}

func TestPhraseHopeAdjustment(t *testing.T) {
	pt := newPhraseTable()
	sig := pt.match("i remember loving this as a kid but it broke after a week")

	if sig.Bias > hopeBias {
		t.Errorf("confirmed pattern should contribute at least %.2f, got %.2f", hopeBias, sig.Bias)
	}
	if sig.PositiveHits != 0 {
		t.Errorf("lead-phrase positives should be discounted, got %d", sig.PositiveHits)
	}
	if sig.NegativeHits == 0 {
		t.Error("confirmed pattern should register a negative hit")
	}

	found := false
	for _, c := range sig.Categories {
		if c == categoryHopeDisappointment {
			found = true
		}
	}
	if !found {
		t.Errorf("missing category %q in %v", categoryHopeDisappointment, sig.Categories)
	}
}

func TestPhraseBiasClamp(t *testing.T) {
	// Three negative hits plus the pattern penalty would exceed the cap.
	pt := newPhraseTable()
	sig := pt.match("i was hoping for more but what a disappointment boring tedious dull")
	if sig.Bias != -totalBiasCap {
		t.Errorf("total bias should clamp at %.2f, got %.2f", -totalBiasCap, sig.Bias)
	}
}

func TestPhraseCategories(t *testing.T) {
	pt := newPhraseTable()
	sig := pt.match("an excellent film with a weak plot")
	want := map[string]bool{categoryStrongPositive: true, categoryStrongNegative: true}
	for _, c := range sig.Categories {
		delete(want, c)
	}
	for missing := range want {
		t.Errorf("missing category %q in %v", missing, sig.Categories)
	}
}
