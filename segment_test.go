package opine

import "testing"

func TestSegment(t *testing.T) {
	tests := []struct {
		text string
		want int
		desc string
	}{
		{"Hello world. How are you? Fine!", 3, "Three terminated sentences"},
		{"Dr. Smith arrived. He was late.", 2, "Abbreviation does not split"},
		{"This costs $5.50 in total.", 1, "Decimal point does not split"},
		{"just some words with no punctuation", 1, "No terminator is one sentence"},
		{"One sentence only.", 1, "Single sentence"},
		{"First! Second! Third! Fourth!", 4, "Exclamation terminators"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			spans := segment(tt.text)
			if len(spans) != tt.want {
				t.Errorf("Text: %q\nExpected %d sentences, got %d: %v",
					tt.text, tt.want, len(spans), spans)
			}
		})
	}
}

func TestSegmentPreservesText(t *testing.T) {
	spans := segment("  I liked it. You did not.  ")
	if len(spans) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(spans))
	}
	if spans[0].Text != "I liked it." {
		t.Errorf("first sentence = %q", spans[0].Text)
	}
	if spans[1].Text != "You did not." {
		t.Errorf("second sentence = %q", spans[1].Text)
	}
}

func TestSegmentEmpty(t *testing.T) {
	if spans := segment("   "); spans != nil {
		t.Errorf("whitespace-only input should yield no spans, got %v", spans)
	}
}
