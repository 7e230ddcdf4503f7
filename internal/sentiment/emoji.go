package sentiment

import "math/rand"

var emojiResponses = map[Label][3]string{
	Positive: {"😊", "😄", "🌟"},
	Negative: {"😔", "😞", "💔"},
	Neutral:  {"😐", "🤔", "😶"},
}

// PickEmoji chooses one of the label's emoji uniformly at random. The choice
// is cosmetic and never feeds back into classification.
func PickEmoji(label Label, rng *rand.Rand) string {
	set := emojiResponses[label]
	return set[rng.Intn(len(set))]
}

func Emojis(label Label) []string {
	set := emojiResponses[label]
	return set[:]
}
