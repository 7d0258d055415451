package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/gyeongsan/ansimtalk-backend/internal/ai"
	"github.com/gyeongsan/ansimtalk-backend/internal/db"
	"github.com/gyeongsan/ansimtalk-backend/internal/geocode"
	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/observability"
)

// Default report location: Gyeongsan city hall, used when the submitter's
// device provides no position.
var cityHallLocation = models.LocationInfo{
	Lat:       35.8251,
	Lng:       128.7348,
	Address:   "경산시청 인근",
	AccuracyM: 100,
	AdminArea: "중방동",
}

type ReportService struct {
	Store    *db.Store
	AI       ai.Classifier
	Geocoder geocode.Geocoder
	Clock    clockwork.Clock
	Metrics  *observability.Metrics
	Logger   zerolog.Logger
}

type SubmitInput struct {
	UserID      string
	Image       string
	Description string
	Location    *models.LocationInfo
}

// Submit runs the intake pipeline: classify, map to a department, fill
// defaults, persist. A classifier transport failure aborts the submission
// and is returned to the caller; a malformed classification has already
// been downgraded to the UNKNOWN fallback by the classifier.
func (s *ReportService) Submit(ctx context.Context, in SubmitInput) (models.ComplaintReport, error) {
	result, err := s.AI.Classify(ctx, in.Image, in.Description)
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.ClassifierErrors.Inc()
		}
		return models.ComplaintReport{}, fmt.Errorf("classify complaint: %w", err)
	}

	if result.Department == "" {
		result.Department, result.DepartmentCode = DepartmentFor(result.Category)
	}

	location := cityHallLocation
	if in.Location != nil {
		location = *in.Location
	}
	s.resolveAddress(ctx, &location)

	userID := in.UserID
	if userID == "" {
		userID = "anonymous_reporter"
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("%s 민원 신고", result.Subcategory)
	}

	report := models.ComplaintReport{
		ID:             newReportID(),
		UserID:         userID,
		CreatedAt:      s.Clock.Now().UTC(),
		Location:       location,
		Image:          in.Image,
		Description:    description,
		Status:         models.StatusReceived,
		Category:       result.Category,
		Subcategory:    result.Subcategory,
		Urgency:        result.Urgency,
		Department:     result.Department,
		DepartmentCode: result.DepartmentCode,
		AIConfidence:   result.Confidence,
		AIReasoning:    result.Reasoning,
		RiskScore:      result.RiskScore,
		Priority:       result.Priority,
	}

	if err := s.Store.InsertReport(ctx, report); err != nil {
		return models.ComplaintReport{}, fmt.Errorf("store report: %w", err)
	}

	if s.Metrics != nil {
		s.Metrics.ReportsSubmitted.Inc()
	}
	s.Logger.Info().
		Str("report_id", report.ID).
		Str("category", string(report.Category)).
		Str("department", report.Department).
		Int("risk_score", report.RiskScore).
		Msg("report submitted")

	return report, nil
}

// resolveAddress fills in a missing address from the geocoder. Failures are
// logged and ignored: the address is display-only.
func (s *ReportService) resolveAddress(ctx context.Context, loc *models.LocationInfo) {
	if s.Geocoder == nil || !geocode.ShouldReverse(loc.Address, loc.Lat, loc.Lng) {
		return
	}
	place, err := s.Geocoder.Reverse(ctx, loc.Lat, loc.Lng)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("reverse geocode failed")
		return
	}
	loc.Address = place.Address
	if loc.AdminArea == "" {
		loc.AdminArea = place.AdminArea
	}
	if loc.RoadName == "" {
		loc.RoadName = place.RoadName
	}
}

func newReportID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "AS-" + raw[:4]
}
