package sentiment

import "strings"

type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05
)

// Classify maps a compound score to a label. Both thresholds are inclusive.
func Classify(compound float64) Label {
	if compound >= POSITIVE_THRESHOLD {
		return Positive
	} else if compound <= NEGATIVE_THRESHOLD {
		return Negative
	}
	return Neutral
}

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Title is the capitalized form shown on the result screen.
func (l Label) Title() string {
	s := l.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (l Label) Color() string {
	switch l {
	case Positive:
		return "green"
	case Negative:
		return "red"
	default:
		return "gray"
	}
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
