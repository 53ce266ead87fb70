package opine

import "fmt"

// A Token represents an individual word of text along with the flags the
// scoring stages need.
type Token struct {
	Text    string // The token's content as it appeared in the input.
	Lower   string // Lowercased form used for lexicon lookups.
	Lemma   string // Canonical dictionary form; equals Lower when unknown.
	Start   int    // Start position in the cleaned text.
	End     int    // End position in the cleaned text.
	Stop    bool   // True for function words excluded from processed tokens.
	Negator bool   // True for negation words ("not", "never", ...).
	Booster bool   // True for intensifiers and diminishers ("very", ...).
}

// A SentenceSpan represents a segmented portion of text. The raw substring is
// preserved so each scoring stage sees the sentence exactly as written.
type SentenceSpan struct {
	Text string // The sentence's text.
}

// String returns the text content of the sentence.
func (s SentenceSpan) String() string {
	return s.Text
}

// SentimentLabel is the closed set of classification outcomes.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
)

// VaderScores holds the valence-aware lexicon scorer's output. The three
// proportions sum to 1 and Compound stays within (-1, 1).
type VaderScores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// TextBlobScores holds the word-polarity averager's output.
type TextBlobScores struct {
	Polarity     float64 `json:"polarity"`     // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 `json:"subjectivity"` // 0.0 (objective) to 1.0 (subjective)
}

// SentenceSentiment is one entry of a result's per-sentence breakdown.
type SentenceSentiment struct {
	Sentence   string         `json:"sentence"`
	Sentiment  SentimentLabel `json:"sentiment"`
	Confidence float64        `json:"confidence"`
}

// AnalysisResult is the document-level outcome of one analysis call. Field
// names and value ranges form the wire contract the surrounding service
// preserves bit-for-bit.
type AnalysisResult struct {
	OverallSentiment SentimentLabel      `json:"overall_sentiment"`
	Confidence       float64             `json:"confidence"`
	VaderScores      VaderScores         `json:"vader_scores"`
	TextBlobScores   TextBlobScores      `json:"textblob_scores"`
	ProcessedTokens  []string            `json:"processed_tokens"`
	TokenCount       int                 `json:"token_count"`
	SentenceCount    int                 `json:"sentence_count"`
	SentenceAnalysis []SentenceSentiment `json:"sentence_analysis"`
	CleanedText      string              `json:"cleaned_text"`
}

// BatchResult pairs one batch item's result with its error, at the item's
// original index. Exactly one of Result and Err is set.
type BatchResult struct {
	Result *AnalysisResult
	Err    error
}

// SentimentBreakdown counts classification outcomes across a set of units
// (sentences or paragraphs).
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// TextStats summarizes a single text for the stats endpoint.
type TextStats struct {
	CharacterCount     int            `json:"character_count"`
	WordCount          int            `json:"word_count"`
	SentenceCount      int            `json:"sentence_count"`
	TokenCount         int            `json:"token_count"`
	SentimentBreakdown VaderScores    `json:"sentiment_breakdown"`
	DominantSentiment  SentimentLabel `json:"dominant_sentiment"`
	Confidence         float64        `json:"confidence"`
}

// ParagraphResult is one paragraph's analysis in file mode.
type ParagraphResult struct {
	Preview  string          `json:"text_preview"`
	Analysis *AnalysisResult `json:"analysis"`
}

// ParagraphReport aggregates a multi-paragraph analysis.
type ParagraphReport struct {
	Paragraphs []ParagraphResult  `json:"paragraphs"`
	Breakdown  SentimentBreakdown `json:"breakdown"`
}

// A ValidationError reports unusable input: empty, oversized, or non-text
// content. It is the only error the analysis entry points return.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "opine: invalid input: " + e.Reason
}

func errEmptyInput() error {
	return &ValidationError{Reason: "text is empty"}
}

func errTooLong(limit int) error {
	return &ValidationError{Reason: fmt.Sprintf("text exceeds maximum length of %d characters", limit)}
}

func errNotText() error {
	return &ValidationError{Reason: "content is not valid UTF-8 text"}
}
