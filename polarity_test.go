package opine

import (
	"math"
	"testing"
)

func TestScorePolarity(t *testing.T) {
	tests := []struct {
		text             string
		wantPolarity     float64
		wantSubjectivity float64
		desc             string
	}{
		{"good", 0.7, 0.6, "Single known word"},
		{"good bad", 0.0, 0.635, "Opposites average to zero"},
		{"the good product", 0.7, 0.6, "Unknown words are ignored"},
		{"nothing matches here", 0.0, 0.0, "No matches at all"},
		{"GOOD", 0.7, 0.6, "Lookup is case-insensitive"},
	}

	pl := newPolarityLexicon()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := pl.scorePolarity(tt.text)
			if math.Abs(got.Polarity-tt.wantPolarity) > 1e-9 {
				t.Errorf("Text: %q\nExpected polarity %.3f\nGot: %.3f",
					tt.text, tt.wantPolarity, got.Polarity)
			}
			if math.Abs(got.Subjectivity-tt.wantSubjectivity) > 1e-9 {
				t.Errorf("Text: %q\nExpected subjectivity %.3f\nGot: %.3f",
					tt.text, tt.wantSubjectivity, got.Subjectivity)
			}
		})
	}
}

func TestScorePolarityIgnoresContext(t *testing.T) {
	// The averager deliberately has no negation handling; that blindness is
	// what makes it an independent cross-check for the valence scorer.
	pl := newPolarityLexicon()
	plain := pl.scorePolarity("good")
	negated := pl.scorePolarity("not good")
	if plain.Polarity != negated.Polarity {
		t.Errorf("averager should ignore negation: plain=%.3f negated=%.3f",
			plain.Polarity, negated.Polarity)
	}
}

func TestScorePolarityRange(t *testing.T) {
	texts := []string{
		"terrible horrible awful worst",
		"excellent perfect wonderful best",
		"good bad great terrible okay",
	}
	pl := newPolarityLexicon()
	for _, text := range texts {
		got := pl.scorePolarity(text)
		if got.Polarity < -1 || got.Polarity > 1 {
			t.Errorf("polarity for %q out of range: %v", text, got.Polarity)
		}
		if got.Subjectivity < 0 || got.Subjectivity > 1 {
			t.Errorf("subjectivity for %q out of range: %v", text, got.Subjectivity)
		}
	}
}
