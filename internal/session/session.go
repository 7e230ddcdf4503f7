package session

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/sentiment-detector/internal/events"
	"github.com/spacesedan/sentiment-detector/internal/history"
	"github.com/spacesedan/sentiment-detector/internal/sentiment"
	"github.com/spacesedan/sentiment-detector/internal/storage"
)

const (
	APP_NAME    = "Sentiment Detector"
	APP_VERSION = "1.0"
	APP_AUTHOR  = "OpenAI"
)

type Scorer interface {
	Score(text string) sentiment.ScoreBreakdown
}

// AnalysisSink receives every completed analysis. Publishing failures are
// logged and never affect the session.
type AnalysisSink interface {
	Publish(event events.AnalysisEvent) error
}

type AdvisoryKind int

const (
	AdvisoryInfo AdvisoryKind = iota
	AdvisoryIOError
)

// Advisory is a one-shot message for the user. It is cleared by the next
// intent.
type Advisory struct {
	Kind    AdvisoryKind
	Title   string
	Message string
}

// Session owns the live State and the History Log for one run of the
// application. It is not safe for concurrent use.
type Session struct {
	id       string
	state    State
	scorer   Scorer
	store    storage.TextStore
	history  *history.Log
	rng      *rand.Rand
	sink     AnalysisSink
	now      func() time.Time
	emoji    string
	advisory *Advisory
}

type Option func(*Session)

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithSink(sink AnalysisSink) Option {
	return func(s *Session) { s.sink = sink }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

func New(scorer Scorer, store storage.TextStore, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		state:   State{Screen: Intro},
		scorer:  scorer,
		store:   store,
		history: history.NewLog(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.now().UnixNano()))
	}

	slog.Debug("[Session] Started", slog.String("session_id", s.id))
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) History() []history.Entry {
	return s.history.Snapshot()
}

func (s *Session) apply(a Action) {
	from := s.state.Screen
	s.state = Transition(s.state, a)
	if s.state.Screen != Result {
		s.emoji = ""
	}

	slog.Debug("[Session] Transition",
		slog.String("session_id", s.id),
		slog.String("from", from.String()),
		slog.String("to", s.state.Screen.String()))
}

func (s *Session) Start() {
	s.advisory = nil
	s.apply(Start{})
}

// SetPrompt replaces the held prompt text. It only has an effect on the
// PromptEntry screen.
func (s *Session) SetPrompt(text string) {
	s.advisory = nil
	s.apply(EditPrompt{Text: text})
}

// Analyze scores the held prompt and moves to the Result screen. Blank
// prompts are skipped without a message; the return value reports whether
// an analysis ran.
func (s *Session) Analyze() bool {
	s.advisory = nil
	if s.state.Screen != PromptEntry {
		return false
	}

	text := strings.TrimSpace(s.state.Prompt)
	if text == "" {
		slog.Debug("[Session] Skipping analysis of blank prompt",
			slog.String("session_id", s.id))
		return false
	}

	scores := s.scorer.Score(text)
	analysis := Analysis{Scores: scores, Label: sentiment.Classify(scores.Compound)}

	s.history.Append(history.Entry{Text: text, Label: analysis.Label})
	s.apply(Analyzed{Text: text, Analysis: analysis})
	s.emoji = sentiment.PickEmoji(analysis.Label, s.rng)

	slog.Info("[Session] Analyzed prompt",
		slog.String("session_id", s.id),
		slog.String("label", analysis.Label.String()),
		slog.Float64("compound", scores.Compound))

	s.publish(text, analysis)
	return true
}

func (s *Session) publish(text string, analysis Analysis) {
	if s.sink == nil {
		return
	}

	err := s.sink.Publish(events.AnalysisEvent{
		SessionID:  s.id,
		Sequence:   s.history.Len(),
		Text:       text,
		Label:      analysis.Label,
		Scores:     analysis.Scores,
		AnalyzedAt: s.now().UTC(),
	})
	if err != nil {
		slog.Warn("[Session] Failed to publish analysis",
			slog.String("session_id", s.id),
			slog.String("error", err.Error()))
	}
}

// NewPrompt leaves the Result screen for another prompt, discarding the
// shown analysis.
func (s *Session) NewPrompt() {
	s.advisory = nil
	s.apply(NewPrompt{})
}

// Reset goes to an empty PromptEntry screen from anywhere.
func (s *Session) Reset() {
	s.advisory = nil
	s.apply(Reset{})
}

// Load replaces the held prompt with the text stored under name. An empty
// name means the selection was cancelled and nothing happens. On failure
// the state is left alone and an advisory is raised.
func (s *Session) Load(ctx context.Context, name string) error {
	s.advisory = nil

	text, err := s.store.Load(ctx, name)
	if errors.Is(err, storage.ErrEmptyName) {
		return nil
	}
	if err != nil {
		s.ioFailure("Open failed", err)
		return err
	}

	if sentiment.IsMarkdownName(name) {
		text = sentiment.ConvertMarkdownToText(text)
	}

	s.apply(Loaded{Text: text})
	slog.Info("[Session] Loaded prompt",
		slog.String("session_id", s.id),
		slog.String("name", name))
	return nil
}

// Save writes the trimmed held prompt under name. A blank prompt or an
// empty name writes nothing. Saving never changes the state.
func (s *Session) Save(ctx context.Context, name string) error {
	s.advisory = nil

	text := strings.TrimSpace(s.state.Prompt)
	if text == "" {
		slog.Debug("[Session] Nothing to save",
			slog.String("session_id", s.id))
		return nil
	}

	err := s.store.Save(ctx, name, text)
	if errors.Is(err, storage.ErrEmptyName) {
		return nil
	}
	if err != nil {
		s.ioFailure("Save failed", err)
		return err
	}

	// Report the name the store actually wrote, extension included.
	saved, _ := storage.NormalizeName(name)
	s.advisory = &Advisory{Kind: AdvisoryInfo, Title: "Saved", Message: "Prompt saved to " + saved}
	slog.Info("[Session] Saved prompt",
		slog.String("session_id", s.id),
		slog.String("name", name))
	return nil
}

func (s *Session) About() {
	s.advisory = &Advisory{
		Kind:    AdvisoryInfo,
		Title:   "About",
		Message: APP_NAME + "\nVersion " + APP_VERSION + "\nDeveloped by " + APP_AUTHOR,
	}
}

func (s *Session) ioFailure(title string, err error) {
	slog.Warn("[Session] "+title,
		slog.String("session_id", s.id),
		slog.String("error", err.Error()))
	s.advisory = &Advisory{Kind: AdvisoryIOError, Title: title, Message: err.Error()}
}
