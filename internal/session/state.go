package session

import (
	"strings"

	"github.com/spacesedan/sentiment-detector/internal/sentiment"
)

type Screen int

const (
	Intro Screen = iota
	PromptEntry
	Result
)

func (s Screen) String() string {
	switch s {
	case PromptEntry:
		return "prompt"
	case Result:
		return "result"
	default:
		return "intro"
	}
}

// Analysis is the classification outcome held on the Result screen.
type Analysis struct {
	Scores sentiment.ScoreBreakdown
	Label  sentiment.Label
}

// State is the single live screen plus the data it shows. Analysis is set
// only when Screen is Result.
type State struct {
	Screen   Screen
	Prompt   string
	Analysis *Analysis
}

type Action interface {
	action()
}

type (
	Start      struct{}
	EditPrompt struct{ Text string }
	Analyzed   struct {
		Text     string
		Analysis Analysis
	}
	NewPrompt struct{}
	Reset     struct{}
	Loaded    struct{ Text string }
)

func (Start) action()      {}
func (EditPrompt) action() {}
func (Analyzed) action()   {}
func (NewPrompt) action()  {}
func (Reset) action()      {}
func (Loaded) action()     {}

// Transition returns the state that follows s under a. Actions that are not
// allowed from the current screen return s unchanged.
func Transition(s State, a Action) State {
	switch a := a.(type) {
	case Start:
		if s.Screen == Intro {
			return State{Screen: PromptEntry, Prompt: s.Prompt}
		}
	case EditPrompt:
		if s.Screen == PromptEntry {
			return State{Screen: PromptEntry, Prompt: a.Text}
		}
	case Analyzed:
		if s.Screen == PromptEntry && strings.TrimSpace(a.Text) != "" {
			analysis := a.Analysis
			return State{Screen: Result, Prompt: a.Text, Analysis: &analysis}
		}
	case NewPrompt:
		if s.Screen == Result {
			return State{Screen: PromptEntry, Prompt: s.Prompt}
		}
	case Reset:
		return State{Screen: PromptEntry}
	case Loaded:
		return State{Screen: PromptEntry, Prompt: a.Text}
	}
	return s
}
