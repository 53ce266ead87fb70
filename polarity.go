package opine

import (
	"strings"

	"gonum.org/v1/gonum/stat"
)

// scorePolarity averages per-word polarity and subjectivity over the words
// the pattern lexicon knows. Unmatched words are ignored rather than treated
// as zero, so short sentences are not diluted. There is deliberately no
// negation or intensifier handling here: the averager is the simple,
// independent cross-check against the valence scorer.
func (pl polarityLexicon) scorePolarity(text string) TextBlobScores {
	var polarities, subjectivities []float64

	for _, w := range strings.Fields(text) {
		word := strings.ToLower(trimWordPunct(w))
		entry, ok := pl[word]
		if !ok {
			continue
		}
		polarities = append(polarities, entry.Polarity)
		subjectivities = append(subjectivities, entry.Subjectivity)
	}

	if len(polarities) == 0 {
		return TextBlobScores{}
	}
	return TextBlobScores{
		Polarity:     stat.Mean(polarities, nil),
		Subjectivity: stat.Mean(subjectivities, nil),
	}
}
