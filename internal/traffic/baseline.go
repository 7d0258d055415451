package traffic

import (
	"time"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// DefaultRefSpeedKmh is substituted for every time bucket when a segment has
// no historical pattern.
const DefaultRefSpeedKmh = 40.0

// Baselines maps segment id -> day type -> expected free-flow speed per time
// bucket. Exactly five buckets per day type.
type Baselines map[string]map[models.DayType][5]float64

// Lookup never fails: unknown segments fall back to the default reference
// speed in all buckets.
func (b Baselines) Lookup(segmentID string, day models.DayType) [5]float64 {
	if pattern, ok := b[segmentID]; ok {
		if speeds, ok := pattern[day]; ok {
			return speeds
		}
	}
	return [5]float64{DefaultRefSpeedKmh, DefaultRefSpeedKmh, DefaultRefSpeedKmh, DefaultRefSpeedKmh, DefaultRefSpeedKmh}
}

func DayTypeOf(t time.Time) models.DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return models.Weekend
	default:
		return models.Weekday
	}
}

// TimeBucket selects one of the five baseline buckets for an hour of day:
// late night, morning, midday, evening, night.
func TimeBucket(hour int) int {
	switch {
	case hour < 6:
		return 0
	case hour < 11:
		return 1
	case hour < 17:
		return 2
	case hour < 21:
		return 3
	default:
		return 4
	}
}
