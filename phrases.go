package opine

import "strings"

// Phrase-matching constants: per-hit weight, the cap on accumulated keyword
// bias, the penalty a confirmed hope→disappointment pattern contributes, and
// the hard cap on the total bias.
const (
	phraseWeight = 0.1
	phraseCap    = 0.3
	hopeBias     = -0.35
	totalBiasCap = 0.5
)

// Phrase categories reported alongside the bias.
const (
	categoryStrongPositive     = "strong_positive"
	categoryStrongNegative     = "strong_negative"
	categoryHopeDisappointment = "hope_disappointment"
)

// PhraseSignal is the keyword matcher's contribution to classification: an
// additive bias for the combiner, hit counts for borderline tie-breaking,
// and the categories that fired.
type PhraseSignal struct {
	Bias         float64
	PositiveHits int
	NegativeHits int
	Categories   []string
}

// phraseTable holds the curated strong-sentiment phrases and the two-part
// hope→disappointment patterns. Matching is plain substring containment
// against cleaned (lowercased, punctuation-stripped) text, so entries are
// written without apostrophes.
type phraseTable struct {
	negative []string
	positive []string
	leads    []string // nostalgic or expectation-framing lead phrases
	outcomes []string // negative-outcome phrases that must follow a lead
}

func newPhraseTable() *phraseTable {
	return &phraseTable{
		// Strong negative expressions the valence lexicon underweights,
		// review-specific put-downs included.
		negative: []string{
			"utter rubbish", "complete rubbish", "total rubbish", "rubbish",
			"completely hopeless", "utterly hopeless", "hopeless",
			"waste of time", "waste of money", "waste of film", "waste of",
			"terrible", "horrible", "awful", "dreadful", "atrocious",
			"error of judgment", "huge error", "big mistake", "disaster",
			"pathetic", "abysmal", "appalling", "disgraceful",
			"should resign", "should quit", "unacceptable", "inexcusable",
			"unforgivable", "bitterly disappointing", "hugely disappointing",
			"disappointing", "disappointed", "disappointment",
			"what a disappointment", "to my disappointment", "let down", "letdown",
			"sad sight", "bad imitation", "poor imitation",
			"pretty weak", "very weak", "quite weak", "weak storyline", "weak plot",
			"not very good", "not that good", "not so good", "isnt that good",
			"didnt laugh", "never laughed",
			"boring", "tedious", "dull", "bland", "mediocre", "forgettable",
			"wouldnt recommend", "would not recommend", "cannot recommend",
			"dont bother", "skip this", "avoid this",
			"not worth", "waste your time", "save your money",
			"fails to", "failed to", "lacks", "lacking", "falls short",
			"worse than", "inferior to", "pales in comparison",
			"nothing like", "far from",
		},
		positive: []string{
			"excellent", "outstanding", "brilliant", "fantastic", "amazing",
			"masterpiece", "incredible", "superb", "phenomenal",
			"extraordinary", "highly recommend", "must see", "must watch",
			"loved it", "love it", "best ever", "best movie", "best film",
			"thoroughly enjoyed", "blown away", "exceeded expectations",
			"pleasantly surprised",
		},
		// A lead followed anywhere later by an outcome means the positive
		// framing describes what was expected or remembered, not what was
		// received.
		leads: []string{
			"hoping for", "hoping", "hoped", "expected", "expecting",
			"wanted", "wished", "thought it would", "should have been",
			"could have been", "was supposed to", "remember loving",
			"remember enjoying", "used to love", "used to enjoy",
			"loved this as a kid", "loving this as a kid", "as a kid",
		},
		outcomes: []string{
			"disappointment", "disappointing", "disappointed", "let down",
			"letdown", "but it broke", "it broke", "broke", "fell apart",
			"stopped working", "gave up on", "not anymore", "no longer",
			"went downhill", "ruined",
		},
	}
}

// match scans cleaned text for phrase hits and returns the accumulated,
// capped bias. Multiple hits accumulate additively; a confirmed
// hope→disappointment pattern contributes its own strong negative bias that
// can override an otherwise positive lexicon read.
func (pt *phraseTable) match(cleaned string) PhraseSignal {
	text := strings.ToLower(cleaned)
	sig := PhraseSignal{}

	for _, p := range pt.negative {
		if strings.Contains(text, p) {
			sig.NegativeHits++
		}
	}
	for _, p := range pt.positive {
		if strings.Contains(text, p) {
			sig.PositiveHits++
		}
	}

	hope := pt.hopeDisappointment(text)
	if hope {
		// The positive words were describing the expectation, not the
		// experience.
		sig.PositiveHits -= 2
		if sig.PositiveHits < 0 {
			sig.PositiveHits = 0
		}
		sig.NegativeHits++
	}

	switch {
	case sig.NegativeHits > sig.PositiveHits:
		sig.Bias = -phraseWeight * float64(minInt(sig.NegativeHits, 3))
	case sig.PositiveHits > sig.NegativeHits:
		sig.Bias = phraseWeight * float64(minInt(sig.PositiveHits, 3))
	}
	if hope {
		sig.Bias += hopeBias
	}
	sig.Bias = clamp(sig.Bias, -totalBiasCap, totalBiasCap)

	if sig.PositiveHits > 0 {
		sig.Categories = append(sig.Categories, categoryStrongPositive)
	}
	if sig.NegativeHits > 0 {
		sig.Categories = append(sig.Categories, categoryStrongNegative)
	}
	if hope {
		sig.Categories = append(sig.Categories, categoryHopeDisappointment)
	}
	return sig
}

// hopeDisappointment reports whether a lead phrase occurs with an outcome
// phrase somewhere after it.
func (pt *phraseTable) hopeDisappointment(text string) bool {
	for _, lead := range pt.leads {
		i := strings.Index(text, lead)
		if i < 0 {
			continue
		}
		rest := text[i+len(lead):]
		for _, outcome := range pt.outcomes {
			if strings.Contains(rest, outcome) {
				return true
			}
		}
	}
	return false
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
