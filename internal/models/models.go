package models

import "time"

type ComplaintStatus string

const (
	StatusReceived   ComplaintStatus = "접수됨"
	StatusAssigned   ComplaintStatus = "부서배정"
	StatusInProgress ComplaintStatus = "처리중"
	StatusResolved   ComplaintStatus = "처리완료"
	StatusRejected   ComplaintStatus = "반려됨"
)

func ValidStatus(s ComplaintStatus) bool {
	switch s {
	case StatusReceived, StatusAssigned, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

type ComplaintCategory string

const (
	CategoryRoad            ComplaintCategory = "ROAD"
	CategoryTrafficFacility ComplaintCategory = "TRAFFIC_FACILITY"
	CategoryEnvWaste        ComplaintCategory = "ENV_WASTE"
	CategorySafetyObstacle  ComplaintCategory = "SAFETY_OBSTACLE"
	CategoryDrainage        ComplaintCategory = "DRAINAGE"
	CategoryUnknown         ComplaintCategory = "UNKNOWN"
)

type Urgency string

const (
	UrgencyLow      Urgency = "일반"
	UrgencyMedium   Urgency = "보통"
	UrgencyHigh     Urgency = "긴급"
	UrgencyCritical Urgency = "매우긴급"
)

type DayType string

const (
	Weekday DayType = "WEEKDAY"
	Weekend DayType = "WEEKEND"
)

type WeatherCondition string

const (
	WeatherClear WeatherCondition = "CLEAR"
	WeatherRain  WeatherCondition = "RAIN"
	WeatherSnow  WeatherCondition = "SNOW"
	WeatherStorm WeatherCondition = "STORM"
)

type LocationInfo struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Address   string  `json:"address,omitempty"`
	AccuracyM float64 `json:"accuracy,omitempty"`
	AdminArea string  `json:"admin_area,omitempty"`
	RoadName  string  `json:"road_name,omitempty"`
	Source    string  `json:"location_source,omitempty"`
}

type ComplaintReport struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	CreatedAt      time.Time         `json:"created_at"`
	Location       LocationInfo      `json:"location"`
	Image          string            `json:"image"`
	Description    string            `json:"description"`
	Status         ComplaintStatus   `json:"status"`
	Category       ComplaintCategory `json:"category"`
	Subcategory    string            `json:"subcategory"`
	Urgency        Urgency           `json:"urgency"`
	Department     string            `json:"department"`
	DepartmentCode string            `json:"department_code"`
	AIConfidence   float64           `json:"ai_confidence"`
	AIReasoning    string            `json:"ai_reasoning"`
	RiskScore      int               `json:"risk_score"`
	Priority       int               `json:"priority"`
}

// ClassificationResult is the structured output of the external AI service.
type ClassificationResult struct {
	Category       ComplaintCategory `json:"category"`
	Subcategory    string            `json:"subcategory"`
	Urgency        Urgency           `json:"urgency"`
	Department     string            `json:"department"`
	DepartmentCode string            `json:"department_code"`
	Confidence     float64           `json:"confidence"`
	Reasoning      string            `json:"reasoning"`
	RiskScore      int               `json:"risk_score"`
	Priority       int               `json:"priority"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrafficSegment is static reference data for a monitored stretch of road.
// Status is an informational tag only; the scoring engine recomputes the
// congestion level independently.
type TrafficSegment struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Path                []LatLng `json:"path"`
	Status              string   `json:"status"`
	SpeedKmh            float64  `json:"speed"`
	IsHabitual          bool     `json:"is_habitual"`
	IncidentDescription string   `json:"incident_description,omitempty"`
}

// ScoreResult is recomputed on every evaluation and never persisted.
type ScoreResult struct {
	Score       int     `json:"score"`
	Level       string  `json:"level"`
	RefSpeedKmh float64 `json:"ref_speed_kmh"`
}

type TrafficAlert struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

type PredictionStat struct {
	Hour     string  `json:"hour"`
	Accuracy float64 `json:"accuracy"`
	MAE      float64 `json:"mae"`
}
