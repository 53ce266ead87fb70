package opine

import "math"

// Combiner weights. The asymmetric default thresholds (tighter positive
// bound) counter the lexicon's bias toward mild positivity in neutral
// factual text; see DefaultConfig.
const (
	weightCompound = 0.30 // valence-lexicon compound score
	weightPolarity = 0.15 // pattern-lexicon polarity
	weightBalance  = 0.25 // cross-sentence balance
	weightDisagree = 0.10 // extra polarity weight when the two scorers disagree

	intensityWeight = 0.15 // weight of the sentence-intensity adjustment
	intensityFloor  = 0.5  // average intensity required to trigger it

	agreementBonus  = 1.2 // confidence factor when all signals align
	disagreeFactor  = 0.5 // confidence factor when the scorers conflict
	keywordConfBump = 0.2 // confidence added for repeated keyword hits
)

// signals carries everything the combiner looks at for one classification.
type signals struct {
	Compound float64 // valence scorer's compound, [-1, 1]
	Polarity float64 // averager's polarity, [-1, 1]
	Balance  float64 // (positive - negative sentences) / total sentences
	Phrase   PhraseSignal

	PosSentences    int
	NegSentences    int
	AvgPosIntensity float64 // mean confidence of positive sentences
	AvgNegIntensity float64 // mean confidence of negative sentences
}

// classify merges the scorer signals into a single combined score, assigns a
// label against the fixed thresholds, and derives a confidence value.
// Deterministic: identical signals always produce identical output.
func classify(sig signals, positiveThreshold, negativeThreshold float64) (SentimentLabel, float64, float64) {
	combined := weightCompound*sig.Compound +
		weightPolarity*sig.Polarity +
		weightBalance*sig.Balance +
		sig.Phrase.Bias

	// Strongly felt sentences weigh more than their count alone suggests.
	switch {
	case sig.AvgNegIntensity > intensityFloor && sig.NegSentences >= 2:
		combined -= intensityWeight * (sig.AvgNegIntensity - intensityFloor)
	case sig.AvgPosIntensity > intensityFloor && sig.PosSentences >= 2:
		combined += intensityWeight * (sig.AvgPosIntensity - intensityFloor)
	}

	// When the two lexicons disagree the simpler averager gets extra say:
	// it is immune to the context tricks that mislead the valence scorer.
	if sig.Compound*sig.Polarity < 0 {
		combined += weightDisagree * sig.Polarity
	}

	label := borderline(sig, combined, positiveThreshold, negativeThreshold)
	return label, combined, confidence(sig, combined)
}

func borderline(sig signals, combined, positiveThreshold, negativeThreshold float64) SentimentLabel {
	switch {
	case combined >= positiveThreshold:
		return Positive
	case combined <= negativeThreshold:
		return Negative
	}

	// Between the thresholds, keyword detection takes priority, then the
	// sentence distribution when it is backed by real intensity.
	switch {
	case sig.Phrase.NegativeHits > sig.Phrase.PositiveHits:
		return Negative
	case sig.Phrase.PositiveHits > sig.Phrase.NegativeHits:
		return Positive
	case sig.NegSentences > sig.PosSentences && sig.AvgNegIntensity > 0.3:
		return Negative
	case sig.PosSentences > sig.NegSentences && sig.AvgPosIntensity > 0.3:
		return Positive
	}
	return Neutral
}

func confidence(sig signals, combined float64) float64 {
	if combined == 0 {
		return 0
	}
	conf := math.Abs(combined)
	if sig.Phrase.NegativeHits >= 2 || sig.Phrase.PositiveHits >= 2 {
		conf = math.Min(conf+keywordConfBump, 1)
	}

	factor := 1.0
	switch {
	case sig.Compound > 0 && sig.Polarity > 0 && sig.Balance > 0,
		sig.Compound < 0 && sig.Polarity < 0 && sig.Balance < 0:
		factor = agreementBonus
	case sig.Compound*sig.Polarity < 0:
		factor = disagreeFactor
	}
	return math.Min(conf*factor, 1)
}
