package traffic

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// Wednesday 08:30, morning peak, baseline bucket 1.
var weekdayPeak = time.Date(2025, 3, 5, 8, 30, 0, 0, time.UTC)

func newTestEngine(at time.Time) Engine {
	return NewEngine(DefaultBaselines(), DefaultWeatherWeights(), clockwork.NewFakeClockAt(at))
}

func roadReports(now time.Time, n int) []models.ComplaintReport {
	out := make([]models.ComplaintReport, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.ComplaintReport{
			Category:  models.CategoryRoad,
			CreatedAt: now.Add(-5 * time.Minute),
		})
	}
	return out
}

func TestScoreWeekdayPeakClear(t *testing.T) {
	e := newTestEngine(weekdayPeak)
	seg := models.TrafficSegment{ID: "TR-03", Name: "경산IC 진입로", SpeedKmh: 8}

	res := e.Score(seg, models.WeatherClear, nil)
	// dropRatio (20-8)/20 = 0.6, peak time weight 1.0:
	// round(100*(0.6*0.40 + 0.20)) = 44
	if res.Score != 44 {
		t.Fatalf("expected score 44, got %d", res.Score)
	}
	if res.Level != LevelCaution {
		t.Fatalf("expected %s, got %s", LevelCaution, res.Level)
	}
	if res.RefSpeedKmh != 20 {
		t.Fatalf("expected reference speed 20, got %v", res.RefSpeedKmh)
	}
}

func TestScoreWeekdayPeakStorm(t *testing.T) {
	e := newTestEngine(weekdayPeak)
	seg := models.TrafficSegment{ID: "TR-03", SpeedKmh: 8}

	res := e.Score(seg, models.WeatherStorm, nil)
	// weather impact (1.45-1)*3 = 1.35:
	// round(100*(0.24 + 0.20 + 1.35*0.15)) = round(64.25) = 64
	if res.Score != 64 {
		t.Fatalf("expected score 64, got %d", res.Score)
	}
	if res.Level != LevelCongested {
		t.Fatalf("expected %s, got %s", LevelCongested, res.Level)
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := newTestEngine(weekdayPeak)
	seg := models.TrafficSegment{ID: "TR-02", SpeedKmh: 18}
	reports := roadReports(weekdayPeak, 3)

	first := e.Score(seg, models.WeatherRain, reports)
	second := e.Score(seg, models.WeatherRain, reports)
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestScoreDropRatioNeverNegative(t *testing.T) {
	midday := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(midday)
	seg := models.TrafficSegment{ID: "TR-99", SpeedKmh: 100} // well above the 40 default

	res := e.Score(seg, models.WeatherClear, nil)
	// only the off-peak time weight contributes: round(100*0.6*0.20) = 12
	if res.Score != 12 {
		t.Fatalf("expected score 12, got %d", res.Score)
	}
	if res.Level != LevelSmooth {
		t.Fatalf("expected %s, got %s", LevelSmooth, res.Level)
	}
}

func TestScoreZeroReferenceSpeedGuard(t *testing.T) {
	midday := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	baselines := Baselines{
		"Z-01": {models.Weekday: {0, 0, 0, 0, 0}},
	}
	e := NewEngine(baselines, DefaultWeatherWeights(), clockwork.NewFakeClockAt(midday))
	seg := models.TrafficSegment{ID: "Z-01", SpeedKmh: 10}

	res := e.Score(seg, models.WeatherClear, nil)
	if res.Score != 12 {
		t.Fatalf("zero reference speed must contribute no drop ratio, got score %d", res.Score)
	}
}

func TestScoreReportPressureSaturates(t *testing.T) {
	midday := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(midday)
	seg := models.TrafficSegment{ID: "TR-99", SpeedKmh: 40} // drop ratio 0 against the default

	// 4 reports: round(100*(0.5*0.25 + 0.6*0.20)) = round(24.5) = 25
	if got := e.Score(seg, models.WeatherClear, roadReports(midday, 4)).Score; got != 25 {
		t.Fatalf("4 reports: expected 25, got %d", got)
	}
	at8 := e.Score(seg, models.WeatherClear, roadReports(midday, 8)).Score
	at12 := e.Score(seg, models.WeatherClear, roadReports(midday, 12)).Score
	if at8 != 37 || at12 != 37 {
		t.Fatalf("pressure must saturate at 8 reports: got %d and %d", at8, at12)
	}
}

func TestScorePeakHours(t *testing.T) {
	peak := map[int]bool{7: true, 8: true, 9: true, 17: true, 18: true, 19: true}
	seg := models.TrafficSegment{ID: "TR-99", SpeedKmh: 40}

	for hour := 0; hour < 24; hour++ {
		at := time.Date(2025, 3, 5, hour, 0, 0, 0, time.UTC)
		res := newTestEngine(at).Score(seg, models.WeatherClear, nil)
		want := 12
		if peak[hour] {
			want = 20
		}
		if res.Score != want {
			t.Fatalf("hour %d: expected score %d, got %d", hour, want, res.Score)
		}
	}
}

func TestScoreWeatherStrictlyIncreasing(t *testing.T) {
	e := newTestEngine(weekdayPeak)
	seg := models.TrafficSegment{ID: "TR-99", SpeedKmh: 40}

	prev := -1
	for _, cond := range []models.WeatherCondition{models.WeatherClear, models.WeatherRain, models.WeatherSnow, models.WeatherStorm} {
		score := e.Score(seg, cond, nil).Score
		if score <= prev {
			t.Fatalf("score must increase strictly with weather severity: %s gave %d after %d", cond, score, prev)
		}
		prev = score
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := map[int]string{
		81: LevelSevere,
		80: LevelCongested,
		61: LevelCongested,
		60: LevelCaution,
		31: LevelCaution,
		30: LevelSmooth,
		0:  LevelSmooth,
	}
	for score, want := range cases {
		if got := LevelFor(score); got != want {
			t.Fatalf("LevelFor(%d) = %s, want %s", score, got, want)
		}
	}
}
