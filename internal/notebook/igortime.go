package notebook

import (
	"math"
	"time"
)

// igorEpochOffset is the number of seconds between the container format's
// native epoch (1904-01-01) and the Unix epoch (1970-01-01): 66 years
// including 17 leap days.
const igorEpochOffset = 2082844800

// IgorTime converts a timestamp expressed as seconds since 1904-01-01 into a
// UTC calendar time, preserving sub-second precision.
func IgorTime(seconds float64) time.Time {
	whole := math.Floor(seconds)
	nsec := int64(math.Round((seconds - whole) * 1e9))
	return time.Unix(int64(whole)-igorEpochOffset, nsec).UTC()
}
