package models

import (
	"math"
	"time"
)

// EpochOffsetSeconds is the number of seconds between the Unix epoch and the
// Knowledge store's reference date (2001-01-01 00:00:00 UTC).
const EpochOffsetSeconds = 978307200

// FromKnowledgeTime converts a raw Knowledge store timestamp to local time.
func FromKnowledgeTime(raw float64) time.Time {
	sec, frac := math.Modf(raw)
	return time.Unix(int64(sec)+EpochOffsetSeconds, int64(frac*float64(time.Second))).In(time.Local)
}

// ToKnowledgeTime converts an instant to a raw Knowledge store timestamp.
func ToKnowledgeTime(t time.Time) float64 {
	return float64(t.Unix()-EpochOffsetSeconds) + float64(t.Nanosecond())/float64(time.Second)
}
