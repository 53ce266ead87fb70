package opine

import (
	"math"
	"testing"
)

func TestClassifyThresholds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		sig  signals
		want SentimentLabel
		desc string
	}{
		{signals{Phrase: PhraseSignal{Bias: 0.12}}, Positive, "Exactly at positive threshold"},
		{signals{Phrase: PhraseSignal{Bias: 0.13}}, Positive, "Above positive threshold"},
		{signals{Phrase: PhraseSignal{Bias: -0.08}}, Negative, "Exactly at negative threshold"},
		{signals{Phrase: PhraseSignal{Bias: -0.09}}, Negative, "Below negative threshold"},
		{signals{Phrase: PhraseSignal{Bias: 0.11}}, Neutral, "Just under positive threshold"},
		{signals{Phrase: PhraseSignal{Bias: -0.07}}, Neutral, "Just above negative threshold"},
		{signals{}, Neutral, "All signals zero"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, combined, _ := classify(tt.sig, cfg.PositiveThreshold, cfg.NegativeThreshold)
			if got != tt.want {
				t.Errorf("signals %+v\nExpected %s (combined=%.4f), got %s",
					tt.sig, tt.want, combined, got)
			}
		})
	}
}

func TestClassifyBorderlineTieBreaks(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		sig  signals
		want SentimentLabel
		desc string
	}{
		{
			signals{Compound: 0.1, Phrase: PhraseSignal{NegativeHits: 1}},
			Negative,
			"Keyword hits win in the borderline zone",
		},
		{
			signals{Compound: -0.05, Phrase: PhraseSignal{PositiveHits: 1}},
			Positive,
			"Positive keyword hits win too",
		},
		{
			signals{Compound: 0.1, PosSentences: 2, AvgPosIntensity: 0.4},
			Positive,
			"Sentence majority with real intensity",
		},
		{
			signals{Compound: 0.1, PosSentences: 2, AvgPosIntensity: 0.2},
			Neutral,
			"Sentence majority without intensity stays neutral",
		},
		{
			signals{Compound: -0.1, NegSentences: 3, PosSentences: 1, AvgNegIntensity: 0.5},
			Negative,
			"Negative sentence majority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, combined, _ := classify(tt.sig, cfg.PositiveThreshold, cfg.NegativeThreshold)
			if got != tt.want {
				t.Errorf("signals %+v\nExpected %s (combined=%.4f), got %s",
					tt.sig, tt.want, combined, got)
			}
		})
	}
}

func TestClassifyDisagreement(t *testing.T) {
	cfg := DefaultConfig()

	// When the scorers disagree in sign, the averager gets extra weight and
	// the confidence is halved.
	agree := signals{Compound: 0.5, Polarity: 0.4}
	disagree := signals{Compound: 0.5, Polarity: -0.4}

	_, agreeCombined, _ := classify(agree, cfg.PositiveThreshold, cfg.NegativeThreshold)
	_, disCombined, disConf := classify(disagree, cfg.PositiveThreshold, cfg.NegativeThreshold)

	if disCombined >= agreeCombined {
		t.Errorf("disagreement should pull the score toward the averager: agree=%.4f disagree=%.4f",
			agreeCombined, disCombined)
	}
	if want := math.Abs(disCombined) * disagreeFactor; math.Abs(disConf-want) > 1e-9 {
		t.Errorf("disagreement should halve confidence: want %.4f, got %.4f", want, disConf)
	}
}

func TestClassifyAgreementBonus(t *testing.T) {
	cfg := DefaultConfig()
	sig := signals{Compound: 0.5, Polarity: 0.5, Balance: 1}
	label, combined, conf := classify(sig, cfg.PositiveThreshold, cfg.NegativeThreshold)

	if label != Positive {
		t.Fatalf("expected positive, got %s", label)
	}
	want := math.Abs(combined) * agreementBonus
	if math.Abs(conf-want) > 1e-9 {
		t.Errorf("full agreement should scale confidence by %.1f: want %.4f, got %.4f",
			agreementBonus, want, conf)
	}
}

func TestClassifyIntensityAdjustment(t *testing.T) {
	cfg := DefaultConfig()
	base := signals{Compound: 0.3, PosSentences: 2, AvgPosIntensity: 0.4}
	intense := signals{Compound: 0.3, PosSentences: 2, AvgPosIntensity: 0.8}

	_, baseCombined, _ := classify(base, cfg.PositiveThreshold, cfg.NegativeThreshold)
	_, intenseCombined, _ := classify(intense, cfg.PositiveThreshold, cfg.NegativeThreshold)

	want := baseCombined + intensityWeight*(0.8-intensityFloor)
	if math.Abs(intenseCombined-want) > 1e-9 {
		t.Errorf("intense sentences should add %.4f: base=%.4f got=%.4f",
			intensityWeight*(0.8-intensityFloor), baseCombined, intenseCombined)
	}

	// A single intense sentence is not enough.
	lone := signals{Compound: 0.3, PosSentences: 1, AvgPosIntensity: 0.9}
	_, loneCombined, _ := classify(lone, cfg.PositiveThreshold, cfg.NegativeThreshold)
	if loneCombined != baseCombined {
		t.Errorf("one sentence should not trigger the adjustment: base=%.4f got=%.4f",
			baseCombined, loneCombined)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	cfg := DefaultConfig()

	// Zero combined score means zero confidence.
	_, _, conf := classify(signals{}, cfg.PositiveThreshold, cfg.NegativeThreshold)
	if conf != 0 {
		t.Errorf("zero signals should give zero confidence, got %.4f", conf)
	}

	// Confidence never exceeds 1 even with every bonus stacked.
	sig := signals{
		Compound: 1, Polarity: 1, Balance: 1,
		Phrase: PhraseSignal{Bias: 0.3, PositiveHits: 3},
	}
	_, _, conf = classify(sig, cfg.PositiveThreshold, cfg.NegativeThreshold)
	if conf > 1 {
		t.Errorf("confidence should cap at 1, got %.4f", conf)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	sig := signals{
		Compound: 0.42, Polarity: -0.1, Balance: 0.5,
		Phrase:       PhraseSignal{Bias: 0.1, PositiveHits: 1},
		PosSentences: 3, NegSentences: 1, AvgPosIntensity: 0.6, AvgNegIntensity: 0.2,
	}
	l1, c1, f1 := classify(sig, cfg.PositiveThreshold, cfg.NegativeThreshold)
	l2, c2, f2 := classify(sig, cfg.PositiveThreshold, cfg.NegativeThreshold)
	if l1 != l2 || c1 != c2 || f1 != f2 {
		t.Errorf("identical signals produced different output: (%s,%v,%v) vs (%s,%v,%v)",
			l1, c1, f1, l2, c2, f2)
	}
}
