package domain

import "fmt"

// MoodLevel is one of five fixed mood categories. The wire format is the
// category name, e.g. "HAPPY".
type MoodLevel string

const (
	MoodHappy       MoodLevel = "HAPPY"
	MoodJustNormal  MoodLevel = "JUST_NORMAL"
	MoodABitMeh     MoodLevel = "A_BIT_MEH"
	MoodGrumpy      MoodLevel = "GRUMPY"
	MoodStressedOut MoodLevel = "STRESSED_OUT"
)

// Levels lists all categories from happiest to unhappiest.
var Levels = []MoodLevel{MoodHappy, MoodJustNormal, MoodABitMeh, MoodGrumpy, MoodStressedOut}

var moodScores = map[MoodLevel]int{
	MoodHappy:       5,
	MoodJustNormal:  4,
	MoodABitMeh:     3,
	MoodGrumpy:      2,
	MoodStressedOut: 1,
}

// ParseMoodLevel validates a category name coming off the wire.
func ParseMoodLevel(s string) (MoodLevel, error) {
	m := MoodLevel(s)
	if _, ok := moodScores[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
	}
	return m, nil
}

// Score returns the integer score of a category (5 for HAPPY down to 1 for
// STRESSED_OUT). Unknown categories score 0; callers validate with
// ParseMoodLevel before submissions reach this point.
func Score(m MoodLevel) int {
	return moodScores[m]
}

// FromScore maps an average score back to a category. Thresholds are
// evaluated top-down, first match wins. Total over all float64 inputs:
// anything below 1.5 (including NaN and negative values) is STRESSED_OUT.
func FromScore(score float64) MoodLevel {
	switch {
	case score >= 4.5:
		return MoodHappy
	case score >= 3.5:
		return MoodJustNormal
	case score >= 2.5:
		return MoodABitMeh
	case score >= 1.5:
		return MoodGrumpy
	default:
		return MoodStressedOut
	}
}
