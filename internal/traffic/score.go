package traffic

import (
	"math"

	"github.com/jonboulle/clockwork"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// Component weights. They sum to 1.0.
const (
	weightSpeedDrop = 0.40
	weightReports   = 0.25
	weightTimeOfDay = 0.20
	weightWeather   = 0.15
)

const (
	offPeakTimeWeight = 0.6
	peakTimeWeight    = 1.0
)

// Congestion level labels, evaluated high to low with strict thresholds.
const (
	LevelSmooth    = "원활"
	LevelCaution   = "주의"
	LevelCongested = "정체"
	LevelSevere    = "심각"
)

// Engine computes the Smart Score congestion index. The baseline and
// weather tables are immutable reference data injected at construction;
// the clock is injected so day-type and time-bucket selection are testable
// with fixed clocks.
type Engine struct {
	Baselines Baselines
	Weather   WeatherTable
	Clock     clockwork.Clock
}

func NewEngine(baselines Baselines, weather WeatherTable, clock clockwork.Clock) Engine {
	return Engine{Baselines: baselines, Weather: weather, Clock: clock}
}

// Score blends speed drop, complaint pressure, time of day, and weather
// into a composite index for one segment at the current instant. It is a
// pure function of its inputs and the injected clock; calling it twice with
// identical state yields identical output.
//
// The result is rounded, never clamped: storm weather amplification can
// legitimately push the index above 100.
func (e Engine) Score(seg models.TrafficSegment, weather models.WeatherCondition, reports []models.ComplaintReport) models.ScoreResult {
	now := e.Clock.Now()
	hour := now.Hour()

	speeds := e.Baselines.Lookup(seg.ID, DayTypeOf(now))
	refSpeed := speeds[TimeBucket(hour)]

	dropRatio := 0.0
	if refSpeed > 0 {
		dropRatio = math.Max(0, (refSpeed-seg.SpeedKmh)/refSpeed)
	}

	reportsNorm := math.Min(1, float64(RecentRoadReports(reports, now))/ReportSaturation)

	timeWeight := offPeakTimeWeight
	if isPeakHour(hour) {
		timeWeight = peakTimeWeight
	}

	weatherImpact := (e.Weather.Weight(weather) - 1) * 3

	score := int(math.Round(100 * (dropRatio*weightSpeedDrop +
		reportsNorm*weightReports +
		timeWeight*weightTimeOfDay +
		weatherImpact*weightWeather)))

	return models.ScoreResult{
		Score:       score,
		Level:       LevelFor(score),
		RefSpeedKmh: refSpeed,
	}
}

func isPeakHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

func LevelFor(score int) string {
	switch {
	case score > 80:
		return LevelSevere
	case score > 60:
		return LevelCongested
	case score > 30:
		return LevelCaution
	default:
		return LevelSmooth
	}
}
