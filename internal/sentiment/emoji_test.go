package sentiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickEmojiStaysInLabelSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, label := range []Label{Positive, Negative, Neutral} {
		set := Emojis(label)
		assert.Len(t, set, 3)
		for i := 0; i < 50; i++ {
			assert.Contains(t, set, PickEmoji(label, rng))
		}
	}
}

func TestPickEmojiIsSeedable(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		assert.Equal(t, PickEmoji(Positive, a), PickEmoji(Positive, b))
	}
}

func TestPickEmojiCoversSet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}

	for i := 0; i < 300; i++ {
		seen[PickEmoji(Negative, rng)] = true
	}
	assert.Len(t, seen, 3)
}
