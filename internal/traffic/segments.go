package traffic

import (
	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/utils"
)

// DefaultSegments is the static Gyeongsan monitoring set. Current speeds
// are expected to come from a telemetry feed; in this system they are fixed
// per session.
func DefaultSegments() []models.TrafficSegment {
	return []models.TrafficSegment{
		{
			ID:   "TR-01",
			Name: "경산역-옥산네거리",
			Path: []models.LatLng{
				{Lat: 35.8353, Lng: 128.7266},
				{Lat: 35.8296, Lng: 128.7342},
			},
			Status:   "ORANGE",
			SpeedKmh: 22,
		},
		{
			ID:   "TR-02",
			Name: "임당역 사거리",
			Path: []models.LatLng{
				{Lat: 35.8384, Lng: 128.7485},
				{Lat: 35.8352, Lng: 128.7424},
			},
			Status:     "ORANGE",
			SpeedKmh:   18,
			IsHabitual: true,
		},
		{
			ID:   "TR-03",
			Name: "경산IC 진입로",
			Path: []models.LatLng{
				{Lat: 35.8127, Lng: 128.7139},
				{Lat: 35.8176, Lng: 128.7226},
				{Lat: 35.8214, Lng: 128.7288},
			},
			Status:              "RED",
			SpeedKmh:            8,
			IsHabitual:          true,
			IncidentDescription: "출근 시간대 상습 지정체 구간",
		},
		{
			ID:   "TR-04",
			Name: "경산시청 사거리",
			Path: []models.LatLng{
				{Lat: 35.8251, Lng: 128.7348},
				{Lat: 35.8282, Lng: 128.7391},
			},
			Status:   "GREEN",
			SpeedKmh: 35,
		},
		{
			ID:   "TR-05",
			Name: "영남대 서문 도로",
			Path: []models.LatLng{
				{Lat: 35.8370, Lng: 128.7530},
				{Lat: 35.8329, Lng: 128.7562},
			},
			Status:   "GREEN",
			SpeedKmh: 27,
		},
	}
}

// DefaultBaselines holds the historical free-flow patterns per segment.
// Five buckets: late night, morning, midday, evening, night.
func DefaultBaselines() Baselines {
	return Baselines{
		"TR-01": {
			models.Weekday: {52, 34, 40, 30, 48},
			models.Weekend: {54, 45, 38, 36, 50},
		},
		"TR-02": {
			models.Weekday: {48, 30, 36, 26, 44},
			models.Weekend: {50, 40, 34, 32, 46},
		},
		"TR-03": {
			models.Weekday: {60, 20, 42, 24, 55},
			models.Weekend: {62, 48, 44, 40, 58},
		},
		"TR-04": {
			models.Weekday: {46, 28, 34, 26, 42},
			models.Weekend: {48, 38, 33, 30, 44},
		},
		"TR-05": {
			models.Weekday: {50, 32, 30, 28, 45},
			models.Weekend: {52, 36, 30, 30, 46},
		},
	}
}

// PathLengthKm sums the haversine distance along a segment polyline.
func PathLengthKm(path []models.LatLng) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += utils.HaversineKm(path[i-1].Lat, path[i-1].Lng, path[i].Lat, path[i].Lng)
	}
	return total
}
