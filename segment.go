package opine

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// The punkt tokenizer is immutable after construction, so one instance is
// shared process-wide.
var (
	punktOnce sync.Once
	punktTok  *sentences.DefaultSentenceTokenizer
)

func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	punktOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			// The training data is compiled into the english package, so
			// this cannot fail at runtime; treat it as a build defect.
			panic("opine: loading sentence tokenizer: " + err.Error())
		}
		punktTok = tok
	})
	return punktTok
}

// segment splits text into sentence units, preserving the original
// substrings for scoring. Splitting happens on sentence-terminal punctuation
// with a trained guard against common abbreviations ("Dr.", "e.g.", single
// initials). The guard is a heuristic, not a guarantee: a false split
// degrades granularity but is not an error.
//
// Text with no sentence-terminal punctuation is one sentence. Empty and
// whitespace-only segments are discarded.
func segment(text string) []SentenceSpan {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var spans []SentenceSpan
	for _, s := range sentenceTokenizer().Tokenize(trimmed) {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		spans = append(spans, SentenceSpan{Text: t})
	}
	if len(spans) == 0 {
		spans = []SentenceSpan{{Text: trimmed}}
	}
	return spans
}
