package history

import (
	"github.com/spacesedan/sentiment-detector/internal/sentiment"
)

const (
	PREVIEW_LENGTH = 20
	ELLIPSIS       = "..."
)

type Entry struct {
	Text  string          `json:"text"`
	Label sentiment.Label `json:"label"`
}

// Log is the session's append-only record of analyses, oldest first.
type Log struct {
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Snapshot returns a copy of the entries in insertion order.
func (l *Log) Snapshot() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// RenderLine formats an entry for the history panel. Only the display is
// truncated; the entry keeps its full text.
func RenderLine(entry Entry) string {
	return preview(entry.Text) + ELLIPSIS + ": " + entry.Label.String()
}

func (l *Log) Lines() []string {
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		lines = append(lines, RenderLine(e))
	}
	return lines
}

// preview cuts on runes so multi-byte characters are never split.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PREVIEW_LENGTH {
		return text
	}
	return string(runes[:PREVIEW_LENGTH])
}
