package sentiment

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonreiter/govader"
)

var ErrLexiconUnavailable = errors.New("[Sentiment] vader lexicon unavailable")

// lexiconProbe must score clearly positive with a working lexicon.
const lexiconProbe = "good"

// ScoreBreakdown is the result of one scoring call. Positive, Negative and
// Neutral sum to 1; Compound is in [-1, 1].
type ScoreBreakdown struct {
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Compound float64 `json:"compound"`
}

// Scorer wraps a govader analyzer. The analyzer is built once and only read
// afterwards, so a single Scorer is shared for the life of the process.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() (scorer *Scorer, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Sentiment] Lexicon load panicked", slog.Any("panic", r))
			scorer, err = nil, fmt.Errorf("%w: %v", ErrLexiconUnavailable, r)
		}
	}()

	analyzer := govader.NewSentimentIntensityAnalyzer()
	if analyzer == nil {
		return nil, ErrLexiconUnavailable
	}

	s := &Scorer{analyzer: analyzer}
	if s.Score(lexiconProbe).Compound <= 0 {
		return nil, fmt.Errorf("%w: probe %q did not score positive", ErrLexiconUnavailable, lexiconProbe)
	}

	slog.Debug("[Sentiment] Vader lexicon loaded")
	return s, nil
}

func (s *Scorer) Score(text string) ScoreBreakdown {
	raw := s.analyzer.PolarityScores(text)

	return normalize(ScoreBreakdown{
		Positive: raw.Positive,
		Negative: raw.Negative,
		Neutral:  raw.Neutral,
		Compound: raw.Compound,
	})
}

// normalize rescales the three proportions so they sum to exactly 1. Vader
// rounds each proportion independently, and yields all zeros when no token
// carried any weight; the latter is treated as fully neutral.
func normalize(b ScoreBreakdown) ScoreBreakdown {
	total := b.Positive + b.Negative + b.Neutral
	if total <= 0 {
		return ScoreBreakdown{Neutral: 1, Compound: clamp(b.Compound)}
	}

	return ScoreBreakdown{
		Positive: b.Positive / total,
		Negative: b.Negative / total,
		Neutral:  b.Neutral / total,
		Compound: clamp(b.Compound),
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
