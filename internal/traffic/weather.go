package traffic

import "github.com/gyeongsan/ansimtalk-backend/internal/models"

// WeatherTable maps a weather condition to a severity multiplier. CLEAR is
// the 1.0 baseline; multipliers increase strictly with severity.
type WeatherTable map[models.WeatherCondition]float64

func DefaultWeatherWeights() WeatherTable {
	return WeatherTable{
		models.WeatherClear: 1.0,
		models.WeatherRain:  1.15,
		models.WeatherSnow:  1.3,
		models.WeatherStorm: 1.45,
	}
}

func (w WeatherTable) Weight(cond models.WeatherCondition) float64 {
	if v, ok := w[cond]; ok {
		return v
	}
	return 1.0
}

var weatherLabels = map[models.WeatherCondition]string{
	models.WeatherClear: "맑음",
	models.WeatherRain:  "비",
	models.WeatherSnow:  "눈",
	models.WeatherStorm: "폭풍",
}

func WeatherLabel(cond models.WeatherCondition) string {
	if l, ok := weatherLabels[cond]; ok {
		return l
	}
	return string(cond)
}

func ParseWeather(s string) (models.WeatherCondition, bool) {
	switch models.WeatherCondition(s) {
	case models.WeatherClear, models.WeatherRain, models.WeatherSnow, models.WeatherStorm:
		return models.WeatherCondition(s), true
	}
	return "", false
}
