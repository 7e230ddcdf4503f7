package history

import (
	"strings"
	"testing"

	"github.com/spacesedan/sentiment-detector/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPreservesInsertionOrder(t *testing.T) {
	log := NewLog()
	e1 := Entry{Text: "first", Label: sentiment.Positive}
	e2 := Entry{Text: "second", Label: sentiment.Negative}
	e3 := Entry{Text: "third", Label: sentiment.Neutral}

	log.Append(e1)
	log.Append(e2)
	log.Append(e3)

	assert.Equal(t, []Entry{e1, e2, e3}, log.Snapshot())
	assert.Equal(t, 3, log.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	log := NewLog()
	log.Append(Entry{Text: "original", Label: sentiment.Positive})

	snap := log.Snapshot()
	snap[0].Text = "mutated"
	snap = append(snap, Entry{Text: "extra"})

	require.Equal(t, 1, log.Len())
	assert.Equal(t, "original", log.Snapshot()[0].Text)
}

func TestEmptyLog(t *testing.T) {
	log := NewLog()
	assert.Empty(t, log.Snapshot())
	assert.Empty(t, log.Lines())
	assert.Equal(t, 0, log.Len())
}

func TestRenderLine(t *testing.T) {
	tests := []struct {
		desc  string
		entry Entry
		want  string
	}{
		{
			"long text is cut to twenty characters",
			Entry{Text: "I love this, it's wonderful!", Label: sentiment.Positive},
			"I love this, it's wo...: positive",
		},
		{
			"short text kept whole",
			Entry{Text: "Sky.", Label: sentiment.Neutral},
			"Sky....: neutral",
		},
		{
			"multi-byte runes are not split",
			Entry{Text: strings.Repeat("é", 25), Label: sentiment.Negative},
			strings.Repeat("é", 20) + "...: negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderLine(tt.entry))
		})
	}
}

func TestRenderingDoesNotTruncateEntries(t *testing.T) {
	log := NewLog()
	long := "This sentence is definitely longer than twenty characters."
	log.Append(Entry{Text: long, Label: sentiment.Neutral})

	lines := log.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], long[:20]+"..."))
	assert.Equal(t, long, log.Snapshot()[0].Text)
}
