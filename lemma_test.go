package opine

import "testing"

func TestLemma(t *testing.T) {
	tests := []struct {
		word string
		want string
		desc string
	}{
		{"children", "child", "Irregular plural"},
		{"women", "woman", "Irregular mutation"},
		{"feet", "foot", "Vowel mutation"},
		{"stories", "story", "ies to y"},
		{"classes", "class", "sses to ss"},
		{"boxes", "box", "xes strip"},
		{"churches", "church", "ches strip"},
		{"wishes", "wish", "shes strip"},
		{"cameras", "camera", "Plain plural"},
		{"glass", "glass", "ss is not a plural"},
		{"bus", "bus", "us is not a plural"},
		{"analysis", "analysis", "is is not a plural"},
		{"as", "as", "Short word untouched"},
		{"ties", "tie", "Short ies falls through to plain strip"},
		{"running", "running", "No rule applies"},
	}

	lm := newLemmatizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := lm.Lemma(tt.word); got != tt.want {
				t.Errorf("Lemma(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
