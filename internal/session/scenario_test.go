package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/sentiment-detector/internal/sentiment"
	"github.com/spacesedan/sentiment-detector/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderSession(t *testing.T) {
	scorer, err := sentiment.NewScorer()
	require.NoError(t, err)

	dir := t.TempDir()
	s := New(scorer, storage.NewFileStore(dir))
	ctx := context.Background()

	tests := []struct {
		text  string
		label sentiment.Label
	}{
		{"I love this, it's wonderful!", sentiment.Positive},
		{"This is the worst, I hate it.", sentiment.Negative},
		{"The sky is blue.", sentiment.Neutral},
	}

	s.Start()
	for i, tt := range tests {
		s.SetPrompt(tt.text)
		require.True(t, s.Analyze())
		r := s.Render()
		require.NotNil(t, r.Label)
		assert.Equal(t, tt.label, *r.Label, tt.text)
		assert.Len(t, r.HistoryLines, i+1)
		s.NewPrompt()
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello world"), 0o644))
	require.NoError(t, s.Load(ctx, "hello.txt"))
	assert.Equal(t, State{Screen: PromptEntry, Prompt: "hello world"}, s.State())

	require.NoError(t, s.Save(ctx, "copy"))
	data, err := os.ReadFile(filepath.Join(dir, "copy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}
