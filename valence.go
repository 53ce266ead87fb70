package opine

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// Tunable constants of the valence scorer. Values follow the VADER
// conventions for negation damping, degree-adverb increments, exclamation
// emphasis, and all-caps emphasis.
const (
	negationWindow  = 3     // tokens scanned backwards for a negator
	negationDamp    = 0.74  // magnitude retained after a sign flip
	boosterDampNear = 0.95  // booster weight two tokens back
	boosterDampFar  = 0.9   // booster weight three tokens back
	capsBoost       = 0.733 // magnitude added for an all-caps scored word
	exclaimBoost    = 0.292 // magnitude added per exclamation mark
	maxExclaims     = 4     // exclamation marks counted beyond this are ignored
	normAlpha       = 15.0  // normalization constant for the compound score
)

// scoreValence scores a stretch of text with the valence lexicon, applying
// negation, intensifier, punctuation, and capitalization adjustments. The
// returned proportions sum to 1 and Compound lies in (-1, 1).
//
// The scorer tokenizes the raw text itself: context windows (negation,
// boosters) need adjacency in the original word sequence, including
// stopwords, not in the filtered token stream.
func (vl *valenceLexicon) scoreValence(text string) VaderScores {
	words := strings.Fields(text)
	if len(words) == 0 {
		return VaderScores{Neutral: 1}
	}

	allCaps := isAllCaps(words)
	valences := make([]float64, 0, len(words))
	neutralCount := 0

	for i, w := range words {
		bare := trimWordPunct(w)
		lower := strings.ToLower(bare)
		if lower == "" {
			continue
		}

		v := vl.Valence(lower)
		if v == 0 {
			// Negators and boosters shape their neighbours; they carry no
			// valence mass of their own.
			if !vl.IsNegation(lower) && vl.Booster(lower) == 0 {
				neutralCount++
			}
			continue
		}

		// All-caps emphasis. Suppressed when the whole text shouts, since
		// then capitalization carries no contrast.
		if !allCaps && isEmphasisCaps(bare) {
			v += math.Copysign(capsBoost, v)
		}

		// Degree adverbs in the preceding window add to magnitude, damped
		// with distance. Stacked boosters accumulate additively.
		v += vl.boosterBoost(words, i, v)

		// Negation flips the sign and dampens magnitude. Scope never
		// crosses clause punctuation.
		if vl.negatedAt(words, i) {
			v = -v * negationDamp
		}

		valences = append(valences, v)
	}

	if len(valences) == 0 {
		return VaderScores{Neutral: 1}
	}

	total := floats.Sum(valences)

	// Trailing exclamation marks amplify the aggregate in its own direction.
	if bangs := countExclaims(text); bangs > 0 && total != 0 {
		total += math.Copysign(float64(bangs)*exclaimBoost, total)
	}

	compound := total / math.Sqrt(total*total+normAlpha)

	// Partition the absolute valence mass into positive and negative
	// buckets; unscored content words provide the implicit neutral mass.
	var posSum, negSum float64
	for _, v := range valences {
		if v > 0 {
			posSum += v + 1
		} else {
			negSum += -v + 1
		}
	}
	mass := posSum + negSum + float64(neutralCount)

	scores := VaderScores{
		Positive: posSum / mass,
		Negative: negSum / mass,
		Neutral:  float64(neutralCount) / mass,
		Compound: compound,
	}
	checkProportions(scores)
	return scores
}

// boosterBoost accumulates degree-adverb increments from the preceding
// window, in the direction of the scored word's valence.
func (vl *valenceLexicon) boosterBoost(words []string, pos int, valence float64) float64 {
	var boost float64
	damp := [negationWindow]float64{1, boosterDampNear, boosterDampFar}
	for back := 1; back <= negationWindow && pos-back >= 0; back++ {
		prev := words[pos-back]
		if hasClauseBreak(prev) {
			break
		}
		b := vl.Booster(strings.ToLower(trimWordPunct(prev)))
		if b != 0 {
			boost += b * damp[back-1]
		}
	}
	return boost * sign(valence)
}

// negatedAt reports whether a negator precedes the word at pos within the
// negation window, with no clause punctuation in between.
func (vl *valenceLexicon) negatedAt(words []string, pos int) bool {
	for back := 1; back <= negationWindow && pos-back >= 0; back++ {
		prev := words[pos-back]
		// A trailing clause break on prev sits between it and the scored
		// word, so even a negator there is out of scope.
		if hasClauseBreak(prev) {
			return false
		}
		if vl.IsNegation(strings.ToLower(trimWordPunct(prev))) {
			return true
		}
	}
	return false
}

// checkProportions asserts the scorer's postcondition. A violation is a
// programming defect, impossible for valid input, so it is fatal rather
// than swallowed.
func checkProportions(s VaderScores) {
	sum := s.Positive + s.Negative + s.Neutral
	if math.Abs(sum-1) > 1e-9 {
		panic(fmt.Sprintf("opine: internal invariant violated: sentiment proportions sum to %v", sum))
	}
}

// trimWordPunct strips leading and trailing punctuation, leaving the bare
// word for lexicon lookups.
func trimWordPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

// hasClauseBreak reports whether the word ends a clause, bounding negation
// and booster scope.
func hasClauseBreak(w string) bool {
	return strings.ContainsAny(w, ",.;:!?")
}

// isEmphasisCaps reports whether a word is fully uppercase and long enough
// for the casing to be deliberate emphasis.
func isEmphasisCaps(w string) bool {
	if len(w) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isAllCaps reports whether every word with letters is uppercase.
func isAllCaps(words []string) bool {
	seen := false
	for _, w := range words {
		bare := trimWordPunct(w)
		if bare == "" {
			continue
		}
		if !isEmphasisCaps(bare) {
			return false
		}
		seen = true
	}
	return seen
}

// countExclaims counts exclamation marks in the text, capped so runs of
// punctuation cannot skew the score without bound.
func countExclaims(text string) int {
	n := strings.Count(text, "!")
	if n > maxExclaims {
		n = maxExclaims
	}
	return n
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
