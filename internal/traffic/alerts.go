package traffic

import (
	"fmt"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

// AlertThreshold is strict: a score of exactly 75 does not alert.
const AlertThreshold = 75

// Alerts scores every segment and returns one alert per segment whose score
// exceeds the threshold, in segment iteration order. Stateless; recomputed
// on every invocation.
func (e Engine) Alerts(segments []models.TrafficSegment, weather models.WeatherCondition, reports []models.ComplaintReport) []models.TrafficAlert {
	var alerts []models.TrafficAlert
	for _, seg := range segments {
		res := e.Score(seg, weather, reports)
		if res.Score > AlertThreshold {
			alerts = append(alerts, models.TrafficAlert{
				Name:   seg.Name,
				Score:  res.Score,
				Reason: fmt.Sprintf("%s 단계 정체 감지", res.Level),
			})
		}
	}
	return alerts
}
