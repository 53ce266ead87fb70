package opine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

// Cleanup patterns, compiled once and held in process-wide immutable state.
// URLs and email-like substrings contribute no sentiment signal and would
// pollute token counts.
var (
	reURL     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	reEmail   = regexp.MustCompile(`\S+@\S+`)
	reNonText = regexp.MustCompile(`[^a-zA-Z0-9\s!?.]`)
)

// preprocess normalizes raw text into tokens and a cleaned string. The
// cleaned string is lowercased; tokens keep their original casing so
// downstream emphasis detection still sees it. Stopwords are flagged rather
// than dropped: negation and intensifier detection needs adjacency in the
// original sequence, and only the processed-token output filters them.
func (a *Analyzer) preprocess(raw string) ([]Token, string, error) {
	if !utf8.ValidString(raw) {
		return nil, "", errNotText()
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, "", errEmptyInput()
	}
	if utf8.RuneCountInString(trimmed) > a.cfg.MaxLength {
		return nil, "", errTooLong(a.cfg.MaxLength)
	}

	// The original-cased and lowercased copies go through identical
	// transformations, so byte offsets line up between them.
	kept := reURL.ReplaceAllString(trimmed, "")
	kept = reEmail.ReplaceAllString(kept, "")
	kept = reNonText.ReplaceAllString(kept, "")
	kept = strings.Join(strings.Fields(kept), " ")
	cleaned := strings.ToLower(kept)

	var tokens []Token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		text := kept[start:end]
		lower := cleaned[start:end]
		tokens = append(tokens, Token{
			Text:    text,
			Lower:   lower,
			Lemma:   a.lemmatizer.Lemma(lower),
			Start:   start,
			End:     end,
			Stop:    isStopword(lower),
			Negator: a.valence.IsNegation(lower),
			Booster: a.valence.Booster(lower) != 0,
		})
		start = -1
	}
	for i := 0; i < len(cleaned); i++ {
		if isWordByte(cleaned[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(cleaned))

	return tokens, cleaned, nil
}

// processedTokens filters the token stream down to the lemmas the result
// reports: stopwords and very short words removed, original order kept.
func processedTokens(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Stop || len(t.Lower) <= 2 {
			continue
		}
		out = append(out, t.Lemma)
	}
	return out
}

// isStopword probes the stopword corpus: a word the cleaner removes entirely
// is a function word.
func isStopword(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

// isWordByte reports whether b belongs inside a token. The cleaned text is
// ASCII after pattern filtering, so byte-wise scanning is exact.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
