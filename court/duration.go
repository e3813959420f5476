package court

import (
	"fmt"
	"time"
)

// Sentence bounds and bucket thresholds, in minutes. The same thresholds
// drive both sentence labels ("1 hour") and chronicle ages ("3 days ago"),
// so they are part of the package contract rather than display trivia.
const (
	MinSentenceMinutes = 1
	MaxSentenceMinutes = 40320 // four weeks

	MinutesPerHour = 60
	MinutesPerDay  = 1440
)

// ValidateSentence checks a requested sentence length before any platform
// call is attempted.
func ValidateSentence(minutes int) error {
	if minutes < MinSentenceMinutes || minutes > MaxSentenceMinutes {
		return newValidation("Sentence must be between 1 minute and 4 weeks (40320 minutes), m'lord!")
	}
	return nil
}

// SentenceLabel renders a sentence length in the largest whole unit:
// minutes below an hour, whole hours below a day, whole days otherwise.
func SentenceLabel(minutes int) string {
	switch {
	case minutes < MinutesPerHour:
		return pluralize(minutes, "minute")
	case minutes < MinutesPerDay:
		return pluralize(minutes/MinutesPerHour, "hour")
	default:
		return pluralize(minutes/MinutesPerDay, "day")
	}
}

// RelativeAge renders how long ago then was, using the same bucketing as
// SentenceLabel.
func RelativeAge(now, then time.Time) string {
	minutes := int(now.Sub(then).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return SentenceLabel(minutes) + " ago"
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
