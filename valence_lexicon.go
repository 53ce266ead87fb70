package opine

// valenceLexicon holds the valence scorer's reference tables. It is built
// once at analyzer construction and never mutated afterwards, so it is safe
// to share across any number of concurrent analyses without locking.
type valenceLexicon struct {
	words    map[string]float64 // raw word valence in [-4, 4]
	boosters map[string]float64 // signed magnitude increments for degree adverbs
	negators map[string]bool
}

func newValenceLexicon() *valenceLexicon {
	return &valenceLexicon{
		words:    valenceWords(),
		boosters: boosterWords(),
		negators: negationWords(),
	}
}

// Valence returns the raw valence for a word, or 0 when the word carries no
// sentiment signal. Absence is expected and common, not an error.
func (vl *valenceLexicon) Valence(word string) float64 {
	return vl.words[word]
}

// Booster returns the magnitude increment contributed by a degree adverb.
// Positive values intensify, negative values diminish.
func (vl *valenceLexicon) Booster(word string) float64 {
	return vl.boosters[word]
}

// IsNegation reports whether word flips the valence of what follows it.
func (vl *valenceLexicon) IsNegation(word string) bool {
	return vl.negators[word]
}

// valenceWords returns the base valence table. Values follow the VADER
// convention: signed intensities on a [-4, 4] scale, independent of context.
func valenceWords() map[string]float64 {
	return map[string]float64{
		// Strong positive
		"amazing":       2.8,
		"awesome":       3.1,
		"best":          3.2,
		"brilliant":     2.8,
		"delighted":     2.7,
		"delightful":    2.8,
		"excellent":     2.7,
		"exceptional":   2.7,
		"extraordinary": 2.6,
		"fabulous":      2.8,
		"fantastic":     2.6,
		"flawless":      2.8,
		"gorgeous":      2.6,
		"incredible":    2.6,
		"love":          3.2,
		"loved":         2.9,
		"lovely":        2.8,
		"loves":         2.7,
		"loving":        2.9,
		"magnificent":   3.0,
		"marvelous":     2.8,
		"masterpiece":   3.0,
		"outstanding":   3.0,
		"perfect":       2.7,
		"perfection":    2.7,
		"phenomenal":    2.9,
		"spectacular":   2.9,
		"stunning":      2.4,
		"superb":        3.0,
		"terrific":      2.9,
		"thrilled":      2.8,
		"wonderful":     2.7,

		// Moderate positive
		"admirable":   2.1,
		"adore":       2.6,
		"beautiful":   2.9,
		"charming":    2.2,
		"comfortable": 1.9,
		"ecstatic":    2.5,
		"enjoy":       2.2,
		"enjoyable":   2.2,
		"enjoyed":     2.3,
		"excited":     2.3,
		"exciting":    2.2,
		"friendly":    2.2,
		"generous":    2.3,
		"glad":        2.0,
		"good":        1.9,
		"grateful":    2.2,
		"great":       3.1,
		"happy":       2.7,
		"helpful":     1.8,
		"impressed":   2.2,
		"impressive":  2.3,
		"pleased":     1.9,
		"pleasure":    2.6,
		"recommend":   1.6,
		"recommended": 1.8,
		"reliable":    1.9,
		"satisfied":   1.8,
		"smooth":      1.2,
		"solid":       1.3,
		"strong":      1.6,
		"succeed":     2.2,
		"success":     2.7,
		"successful":  2.4,
		"win":         2.8,
		"winner":      2.8,
		"worthwhile":  1.8,
		"worthy":      1.9,

		// Mild positive
		"better":      1.9,
		"clean":       1.7,
		"clear":       1.1,
		"decent":      1.1,
		"easy":        1.9,
		"fair":        1.6,
		"fine":        0.8,
		"fresh":       1.3,
		"fun":         2.3,
		"gain":        1.4,
		"hope":        1.9,
		"hopeful":     1.7,
		"interesting": 1.7,
		"kind":        2.4,
		"like":        1.5,
		"liked":       1.7,
		"likes":       1.6,
		"nice":        1.8,
		"okay":        0.9,
		"ok":          0.9,
		"play":        1.0,
		"pretty":      2.2,
		"safe":        1.9,
		"smart":       1.7,
		"special":     1.7,
		"sweet":       2.0,
		"thank":       1.9,
		"thanks":      1.9,
		"useful":      1.9,
		"value":       1.4,
		"warm":        1.4,
		"welcome":     2.0,
		"well":        1.1,
		"yes":         1.7,

		// Strong negative
		"abysmal":    -3.1,
		"appalling":  -2.9,
		"atrocious":  -2.9,
		"awful":      -2.0,
		"disaster":   -3.1,
		"disastrous": -2.9,
		"disgusting": -2.4,
		"dreadful":   -2.6,
		"hate":       -2.7,
		"hated":      -2.6,
		"hates":      -2.3,
		"horrible":   -2.5,
		"horrific":   -2.9,
		"hopeless":   -2.2,
		"pathetic":   -2.1,
		"rubbish":    -2.2,
		"terrible":   -2.1,
		"unbearable": -2.4,
		"worst":      -3.1,
		"worthless":  -2.4,

		// Moderate negative
		"angry":          -2.3,
		"annoyed":        -1.8,
		"annoying":       -1.9,
		"bad":            -2.5,
		"broke":          -1.2,
		"broken":         -1.8,
		"cheap":          -0.9,
		"crap":           -2.4,
		"cry":            -1.8,
		"damage":         -1.8,
		"damaged":        -1.9,
		"defective":      -2.0,
		"disappoint":     -1.9,
		"disappointed":   -2.0,
		"disappointing":  -2.2,
		"disappointment": -2.3,
		"dirty":          -1.8,
		"fail":           -2.3,
		"failed":         -2.1,
		"fails":          -1.9,
		"failure":        -2.4,
		"fake":           -1.7,
		"fear":           -2.2,
		"frustrated":     -2.1,
		"frustrating":    -1.9,
		"garbage":        -2.1,
		"gross":          -2.1,
		"hurt":           -2.0,
		"inferior":       -1.9,
		"lose":           -1.6,
		"loss":           -1.3,
		"lost":           -1.3,
		"mess":           -1.5,
		"miserable":      -2.5,
		"mistake":        -1.7,
		"nasty":          -2.6,
		"painful":        -2.0,
		"poor":           -1.9,
		"problem":        -1.7,
		"problems":       -1.7,
		"regret":         -1.9,
		"sad":            -2.1,
		"scam":           -2.6,
		"terribly":       -2.4,
		"ugly":           -2.3,
		"unhappy":        -1.8,
		"upset":          -1.6,
		"useless":        -1.8,
		"waste":          -1.8,
		"wasted":         -2.0,
		"worse":          -2.1,
		"wrong":          -2.1,

		// Mild negative
		"bland":       -0.8,
		"boring":      -1.3,
		"bug":         -1.3,
		"bugs":        -1.4,
		"doubt":       -1.5,
		"dull":        -1.7,
		"expensive":   -0.6,
		"forgettable": -1.1,
		"hard":        -0.4,
		"lack":        -1.3,
		"lacking":     -1.4,
		"lacks":       -1.2,
		"mediocre":    -0.6,
		"noisy":       -1.1,
		"slow":        -0.9,
		"tedious":     -1.4,
		"tired":       -1.4,
		"weak":        -1.9,
		"weird":       -0.7,
	}
}

// boosterWords returns the degree-adverb table. Each entry is the increment
// added to (or, for diminishers, subtracted from) the magnitude of the next
// scored word. Stacked boosters compound additively, not multiplicatively.
func boosterWords() map[string]float64 {
	const incr = 0.293
	return map[string]float64{
		"absolutely":    incr,
		"amazingly":     incr,
		"completely":    incr,
		"considerably":  incr,
		"decidedly":     incr,
		"deeply":        incr,
		"enormously":    incr,
		"entirely":      incr,
		"especially":    incr,
		"exceptionally": incr,
		"extremely":     incr,
		"greatly":       incr,
		"highly":        incr,
		"hugely":        incr,
		"incredibly":    incr,
		"intensely":     incr,
		"majorly":       incr,
		"particularly":  incr,
		"purely":        incr,
		"quite":         incr,
		"really":        incr,
		"remarkably":    incr,
		"so":            incr,
		"substantially": incr,
		"thoroughly":    incr,
		"totally":       incr,
		"tremendously":  incr,
		"truly":         incr,
		"unbelievably":  incr,
		"unusually":     incr,
		"utterly":       incr,
		"very":          incr,

		"almost":       -incr,
		"barely":       -incr,
		"hardly":       -incr,
		"kinda":        -incr,
		"less":         -incr,
		"little":       -incr,
		"marginally":   -incr,
		"occasionally": -incr,
		"partly":       -incr,
		"scarcely":     -incr,
		"slightly":     -incr,
		"somewhat":     -incr,
		"sorta":        -incr,
	}
}

// negationWords returns the closed set of words that flip valence. None of
// these appear in the valence table, so a negator never scores itself.
func negationWords() map[string]bool {
	words := []string{
		"not", "no", "never", "neither", "nor", "none", "nobody", "nothing",
		"nowhere", "cannot", "can't", "won't", "don't", "doesn't", "didn't",
		"isn't", "aren't", "wasn't", "weren't", "hasn't", "haven't", "hadn't",
		"wouldn't", "shouldn't", "couldn't", "ain't", "without", "rarely",
		"seldom", "despite",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
