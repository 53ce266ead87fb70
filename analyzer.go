// Package opine implements a rule-based hybrid sentiment classifier. It
// combines a valence-aware lexicon scorer, a word-polarity averager, a
// curated keyword/phrase override table, and cross-sentence aggregation into
// a single label, confidence score, and per-sentence breakdown.
package opine

import (
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"
)

// Config is the analyzer's tunable surface.
type Config struct {
	MaxLength         int     // longest accepted input, in characters
	PositiveThreshold float64 // combined score at or above this is positive
	NegativeThreshold float64 // combined score at or below this is negative
}

// DefaultConfig returns the standard configuration. The positive bound is
// deliberately tighter than the negative one: the valence lexicon leans
// mildly positive on neutral factual text.
func DefaultConfig() Config {
	return Config{
		MaxLength:         50000,
		PositiveThreshold: 0.12,
		NegativeThreshold: -0.08,
	}
}

// An Analyzer scores text for sentiment. Its reference tables are built once
// here and never mutated, so a single Analyzer is safe for any number of
// concurrent callers.
type Analyzer struct {
	cfg        Config
	valence    *valenceLexicon
	polarity   polarityLexicon
	phrases    *phraseTable
	lemmatizer *lemmatizer
}

// NewAnalyzer creates an analyzer. Zero-valued config fields fall back to
// the defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = def.MaxLength
	}
	if cfg.PositiveThreshold == 0 {
		cfg.PositiveThreshold = def.PositiveThreshold
	}
	if cfg.NegativeThreshold == 0 {
		cfg.NegativeThreshold = def.NegativeThreshold
	}
	return &Analyzer{
		cfg:        cfg,
		valence:    newValenceLexicon(),
		polarity:   newPolarityLexicon(),
		phrases:    newPhraseTable(),
		lemmatizer: newLemmatizer(),
	}
}

// Analyze runs the full pipeline over one text and returns the
// document-level result. The only error it returns is *ValidationError;
// every scoring stage fails open on unknown words.
func (a *Analyzer) Analyze(text string) (*AnalysisResult, error) {
	tokens, cleaned, err := a.preprocess(text)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)

	spans := segment(trimmed)
	perSentence := make([]SentenceSentiment, 0, len(spans))

	var posCount, negCount int
	var posIntensity, negIntensity float64
	for _, span := range spans {
		label, conf := a.classifySentence(span.Text)
		perSentence = append(perSentence, SentenceSentiment{
			Sentence:   span.Text,
			Sentiment:  label,
			Confidence: conf,
		})
		switch label {
		case Positive:
			posCount++
			posIntensity += conf
		case Negative:
			negCount++
			negIntensity += conf
		}
	}

	vader := a.valence.scoreValence(trimmed)
	blob := a.polarity.scorePolarity(trimmed)
	sig := signals{
		Compound:     vader.Compound,
		Polarity:     blob.Polarity,
		Phrase:       a.phrases.match(cleaned),
		PosSentences: posCount,
		NegSentences: negCount,
	}
	if len(spans) > 0 {
		sig.Balance = float64(posCount-negCount) / float64(len(spans))
	}
	if posCount > 0 {
		sig.AvgPosIntensity = posIntensity / float64(posCount)
	}
	if negCount > 0 {
		sig.AvgNegIntensity = negIntensity / float64(negCount)
	}

	label, _, conf := classify(sig, a.cfg.PositiveThreshold, a.cfg.NegativeThreshold)

	processed := processedTokens(tokens)
	return &AnalysisResult{
		OverallSentiment: label,
		Confidence:       conf,
		VaderScores:      vader,
		TextBlobScores:   blob,
		ProcessedTokens:  processed,
		TokenCount:       len(processed),
		SentenceCount:    len(spans),
		SentenceAnalysis: perSentence,
		CleanedText:      cleaned,
	}, nil
}

// classifySentence runs the scoring stages over a single sentence. The
// cross-sentence balance signal has no meaning inside one sentence and stays
// zero.
func (a *Analyzer) classifySentence(sentence string) (SentimentLabel, float64) {
	sig := signals{
		Compound: a.valence.scoreValence(sentence).Compound,
		Polarity: a.polarity.scorePolarity(sentence).Polarity,
		Phrase:   a.phrases.match(cleanForMatch(sentence)),
	}
	label, _, conf := classify(sig, a.cfg.PositiveThreshold, a.cfg.NegativeThreshold)
	return label, conf
}

// AnalyzeBatch analyzes texts concurrently and returns one entry per input,
// in input order. A failing item becomes an error entry at its index; the
// remaining items still compute.
func (a *Analyzer) AnalyzeBatch(texts []string) []BatchResult {
	results := make([]BatchResult, len(texts))
	if len(texts) == 0 {
		return results
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(texts) {
		workers = len(texts)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := a.Analyze(texts[i])
				results[i] = BatchResult{Result: res, Err: err}
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// ComputeStats summarizes one text: counts plus the sentiment breakdown.
func (a *Analyzer) ComputeStats(text string) (*TextStats, error) {
	res, err := a.Analyze(text)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)
	return &TextStats{
		CharacterCount:     utf8.RuneCountInString(trimmed),
		WordCount:          len(strings.Fields(trimmed)),
		SentenceCount:      res.SentenceCount,
		TokenCount:         res.TokenCount,
		SentimentBreakdown: res.VaderScores,
		DominantSentiment:  res.OverallSentiment,
		Confidence:         res.Confidence,
	}, nil
}

// AnalyzeParagraphs runs the pipeline per paragraph and tallies a breakdown
// of paragraph labels. Paragraphs split on blank lines; content with no
// blank lines falls back to single-newline splitting, which handles files
// that separate entries one per line.
func (a *Analyzer) AnalyzeParagraphs(content string) (*ParagraphReport, error) {
	if !utf8.ValidString(content) {
		return nil, errNotText()
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, errEmptyInput()
	}
	if utf8.RuneCountInString(trimmed) > a.cfg.MaxLength {
		return nil, errTooLong(a.cfg.MaxLength)
	}

	paragraphs := splitParagraphs(trimmed)
	report := &ParagraphReport{Paragraphs: make([]ParagraphResult, 0, len(paragraphs))}
	for _, p := range paragraphs {
		res, err := a.Analyze(p)
		if err != nil {
			return nil, err
		}
		report.Paragraphs = append(report.Paragraphs, ParagraphResult{
			Preview:  preview(p, 100),
			Analysis: res,
		})
		switch res.OverallSentiment {
		case Positive:
			report.Breakdown.Positive++
		case Negative:
			report.Breakdown.Negative++
		default:
			report.Breakdown.Neutral++
		}
	}
	return report, nil
}

// ConfidenceBand buckets a confidence or compound score into the coarse
// levels the UI layers display.
func ConfidenceBand(score float64) string {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 0.5:
		return "high"
	case abs >= 0.2:
		return "medium"
	default:
		return "low"
	}
}

// cleanForMatch lowercases and strips a raw substring the same way the
// preprocessor cleans whole documents, so phrase rules written in cleaned
// form match sentence fragments too.
func cleanForMatch(s string) string {
	s = reNonText.ReplaceAllString(strings.ToLower(s), "")
	return strings.Join(strings.Fields(s), " ")
}

func splitParagraphs(content string) []string {
	parts := nonEmpty(strings.Split(content, "\n\n"))
	if len(parts) <= 1 {
		if byLine := nonEmpty(strings.Split(content, "\n")); len(byLine) > 1 {
			return byLine
		}
	}
	return parts
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
