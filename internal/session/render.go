package session

import (
	"fmt"

	"github.com/spacesedan/sentiment-detector/internal/sentiment"
)

const PROMPT_PLACEHOLDER = "Enter the prompt..."

// Slice is one wedge of the score chart.
type Slice struct {
	Name    string
	Value   float64
	Percent string
}

// Render is everything the presentation layer needs to draw the current
// screen. It is rebuilt on every call and owns its slices.
type Render struct {
	Screen       Screen
	PromptText   string
	Placeholder  string
	Label        *sentiment.Label
	Scores       *sentiment.ScoreBreakdown
	Emoji        string
	Color        string
	Chart        []Slice
	HistoryLines []string
	Advisory     *Advisory
}

func (s *Session) Render() Render {
	r := Render{
		Screen:       s.state.Screen,
		PromptText:   s.state.Prompt,
		HistoryLines: s.history.Lines(),
	}

	if r.Screen == PromptEntry && r.PromptText == "" {
		r.Placeholder = PROMPT_PLACEHOLDER
	}

	if a := s.state.Analysis; a != nil && r.Screen == Result {
		label := a.Label
		scores := a.Scores
		r.Label = &label
		r.Scores = &scores
		r.Emoji = s.emoji
		r.Color = label.Color()
		r.Chart = chart(scores)
	}

	if s.advisory != nil {
		adv := *s.advisory
		r.Advisory = &adv
	}

	return r
}

// chart orders the slices Positive, Neutral, Negative.
func chart(b sentiment.ScoreBreakdown) []Slice {
	return []Slice{
		{Name: "Positive", Value: b.Positive, Percent: percent(b.Positive)},
		{Name: "Neutral", Value: b.Neutral, Percent: percent(b.Neutral)},
		{Name: "Negative", Value: b.Negative, Percent: percent(b.Negative)},
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
