package opine

import "strings"

// lemmatizer reduces tokens to a canonical dictionary form using an
// irregular-form table plus ordered suffix-stripping rules. Lookups fail
// open: a word no rule covers passes through unchanged.
type lemmatizer struct {
	irregular map[string]string
}

func newLemmatizer() *lemmatizer {
	return &lemmatizer{irregular: irregularForms()}
}

// Lemma returns the canonical form of a lowercase word.
func (lm *lemmatizer) Lemma(word string) string {
	if lemma, ok := lm.irregular[word]; ok {
		return lemma
	}

	// Suffix rules run in order of specificity; the first applicable rule
	// wins. Stems shorter than three characters are left alone, which keeps
	// function words like "is" and "as" intact.
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "shes"), strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") &&
		!strings.HasSuffix(word, "is") &&
		len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}

// irregularForms maps plural and mutated forms that suffix stripping cannot
// reach back to their dictionary form.
func irregularForms() map[string]string {
	return map[string]string{
		"analyses":  "analysis",
		"children":  "child",
		"crises":    "crisis",
		"criteria":  "criterion",
		"feet":      "foot",
		"geese":     "goose",
		"halves":    "half",
		"indices":   "index",
		"knives":    "knife",
		"leaves":    "leaf",
		"lives":     "life",
		"matrices":  "matrix",
		"men":       "man",
		"mice":      "mouse",
		"oxen":      "ox",
		"phenomena": "phenomenon",
		"selves":    "self",
		"teeth":     "tooth",
		"theses":    "thesis",
		"wives":     "wife",
		"wolves":    "wolf",
		"women":     "woman",
	}
}
