package traffic

import (
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// With the 40 km/h default baseline, morning peak, clear weather, and the
// pressure component saturated (8 reports, +45 points), live speeds 9 and 10
// land exactly on 76 and 75.
func TestAlertThresholdStrict(t *testing.T) {
	e := NewEngine(Baselines{}, DefaultWeatherWeights(), clockwork.NewFakeClockAt(weekdayPeak))
	segments := []models.TrafficSegment{
		{ID: "S-A", Name: "세그먼트 A", SpeedKmh: 9},
		{ID: "S-B", Name: "세그먼트 B", SpeedKmh: 10},
	}
	reports := roadReports(weekdayPeak, 8)

	if got := e.Score(segments[0], models.WeatherClear, reports).Score; got != 76 {
		t.Fatalf("segment A: expected score 76, got %d", got)
	}
	if got := e.Score(segments[1], models.WeatherClear, reports).Score; got != 75 {
		t.Fatalf("segment B: expected score 75, got %d", got)
	}

	alerts := e.Alerts(segments, models.WeatherClear, reports)
	if len(alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(alerts))
	}
	if alerts[0].Name != "세그먼트 A" || alerts[0].Score != 76 {
		t.Fatalf("unexpected alert: %+v", alerts[0])
	}
	if alerts[0].Reason != "정체 단계 정체 감지" {
		t.Fatalf("unexpected alert reason: %s", alerts[0].Reason)
	}
}

func TestAlertsKeepSegmentOrder(t *testing.T) {
	e := NewEngine(Baselines{}, DefaultWeatherWeights(), clockwork.NewFakeClockAt(weekdayPeak))
	segments := []models.TrafficSegment{
		{ID: "S-C", Name: "세그먼트 C", SpeedKmh: 0}, // full drop: 40+20+25 = 85
		{ID: "S-B", Name: "세그먼트 B", SpeedKmh: 10},
		{ID: "S-A", Name: "세그먼트 A", SpeedKmh: 9},
	}
	reports := roadReports(weekdayPeak, 8)

	alerts := e.Alerts(segments, models.WeatherClear, reports)
	if len(alerts) != 2 {
		t.Fatalf("expected two alerts, got %d", len(alerts))
	}
	if alerts[0].Name != "세그먼트 C" || alerts[1].Name != "세그먼트 A" {
		t.Fatalf("alerts must follow segment iteration order, got %+v", alerts)
	}
	if alerts[0].Reason != "심각 단계 정체 감지" {
		t.Fatalf("unexpected severe alert reason: %s", alerts[0].Reason)
	}
}

func TestRenderThresholds(t *testing.T) {
	colors := map[int]string{85: "#ef4444", 70: "#f97316", 45: "#facc15", 10: "#10b981", 80: "#f97316"}
	for score, want := range colors {
		if got := ColorFor(score); got != want {
			t.Fatalf("ColorFor(%d) = %s, want %s", score, got, want)
		}
	}
	if WeightFor(61) != 12 {
		t.Fatalf("score 61 must render thick")
	}
	if WeightFor(60) != 8 {
		t.Fatalf("score 60 must render thin")
	}
}
