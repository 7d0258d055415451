package handlers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gyeongsan/ansimtalk-backend/internal/db"
	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/observability"
	"github.com/gyeongsan/ansimtalk-backend/internal/service"
	"github.com/gyeongsan/ansimtalk-backend/internal/traffic"
)

type Handler struct {
	Store     *db.Store
	Reports   *service.ReportService
	Engine    traffic.Engine
	Segments  []models.TrafficSegment
	Validator *validator.Validate
	Metrics   *observability.Metrics
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type locationPayload struct {
	Lat       float64 `json:"lat" binding:"required" validate:"latitude"`
	Lng       float64 `json:"lng" binding:"required" validate:"longitude"`
	Address   string  `json:"address"`
	AccuracyM float64 `json:"accuracy" validate:"gte=0"`
	AdminArea string  `json:"admin_area"`
	RoadName  string  `json:"road_name"`
	Source    string  `json:"location_source"`
}

type submitReportRequest struct {
	UserID      string           `json:"user_id"`
	Image       string           `json:"image" binding:"required"`
	Description string           `json:"description"`
	Location    *locationPayload `json:"location"`
}

// @Summary Submit a complaint report
// @Description Classifies the photo and description via the AI service and stores the report
// @Tags reports
// @Accept json
// @Produce json
// @Success 201 {object} models.ComplaintReport
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/reports [post]
func (h *Handler) SubmitReport(c *gin.Context) {
	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "image is required", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_LOCATION", "Location coordinates out of range", err.Error())
		return
	}

	in := service.SubmitInput{
		UserID:      req.UserID,
		Image:       req.Image,
		Description: req.Description,
	}
	if req.Location != nil {
		in.Location = &models.LocationInfo{
			Lat:       req.Location.Lat,
			Lng:       req.Location.Lng,
			Address:   req.Location.Address,
			AccuracyM: req.Location.AccuracyM,
			AdminArea: req.Location.AdminArea,
			RoadName:  req.Location.RoadName,
			Source:    req.Location.Source,
		}
	}

	report, err := h.Reports.Submit(c.Request.Context(), in)
	if err != nil {
		// submission is abandoned, never silently completed
		writeError(c, http.StatusBadGateway, "AI_UNAVAILABLE",
			"민원 접수 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.", err.Error())
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) ReportsList(c *gin.Context) {
	reports, err := h.Store.ListReports(c.Request.Context(), c.Query("status"), c.Query("category"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list reports", err.Error())
		return
	}
	if reports == nil {
		reports = []models.ComplaintReport{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (h *Handler) ReportDetails(c *gin.Context) {
	report, err := h.Store.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Report not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get report", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

type updateStatusRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required"`
}

func (h *Handler) UpdateReportStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required", err.Error())
		return
	}
	if !models.ValidStatus(req.Status) {
		writeError(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown complaint status", string(req.Status))
		return
	}

	id := c.Param("id")
	if err := h.Store.UpdateReportStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Report not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

type segmentView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Path        []models.LatLng `json:"path"`
	SpeedKmh    float64         `json:"speed"`
	RefSpeedKmh float64         `json:"ref_speed_kmh"`
	Score       int             `json:"score"`
	Level       string          `json:"level"`
	Color       string          `json:"color"`
	Weight      int             `json:"weight"`
	LengthKm    float64         `json:"length_km"`
	IsHabitual  bool            `json:"is_habitual"`
}

// @Summary Traffic congestion overlay
// @Description Smart Score per monitored segment with map rendering hints
// @Tags traffic
// @Produce json
// @Param weather query string false "CLEAR|RAIN|SNOW|STORM"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/traffic [get]
func (h *Handler) TrafficOverlay(c *gin.Context) {
	weather, reports, ok := h.trafficInputs(c)
	if !ok {
		return
	}

	views := make([]segmentView, 0, len(h.Segments))
	for _, seg := range h.Segments {
		res := h.Engine.Score(seg, weather, reports)
		views = append(views, segmentView{
			ID:          seg.ID,
			Name:        seg.Name,
			Path:        seg.Path,
			SpeedKmh:    seg.SpeedKmh,
			RefSpeedKmh: res.RefSpeedKmh,
			Score:       res.Score,
			Level:       res.Level,
			Color:       traffic.ColorFor(res.Score),
			Weight:      traffic.WeightFor(res.Score),
			LengthKm:    traffic.PathLengthKm(seg.Path),
			IsHabitual:  seg.IsHabitual,
		})
	}

	if h.Metrics != nil {
		h.Metrics.TrafficEvaluations.Inc()
	}
	c.JSON(http.StatusOK, gin.H{
		"weather":       weather,
		"weather_label": traffic.WeatherLabel(weather),
		"generated_at":  h.Engine.Clock.Now().UTC(),
		"segments":      views,
	})
}

// @Summary Traffic congestion alerts
// @Tags traffic
// @Produce json
// @Param weather query string false "CLEAR|RAIN|SNOW|STORM"
// @Success 200 {object} map[string]any
// @Router /api/traffic/alerts [get]
func (h *Handler) TrafficAlerts(c *gin.Context) {
	weather, reports, ok := h.trafficInputs(c)
	if !ok {
		return
	}

	alerts := h.Engine.Alerts(h.Segments, weather, reports)
	if alerts == nil {
		alerts = []models.TrafficAlert{}
	}
	c.JSON(http.StatusOK, gin.H{"weather": weather, "alerts": alerts})
}

// trafficInputs parses the weather selection and loads the complaint list
// the proximity filter runs over. Writes the error response itself.
func (h *Handler) trafficInputs(c *gin.Context) (models.WeatherCondition, []models.ComplaintReport, bool) {
	weather := models.WeatherClear
	if raw := c.Query("weather"); raw != "" {
		parsed, ok := traffic.ParseWeather(raw)
		if !ok {
			writeError(c, http.StatusBadRequest, "INVALID_WEATHER", "Unknown weather condition", raw)
			return "", nil, false
		}
		weather = parsed
	}

	reports, err := h.Store.ListReports(c.Request.Context(), "", "")
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list reports", err.Error())
		return "", nil, false
	}
	return weather, reports, true
}

func (h *Handler) TrafficStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prediction_stats": predictionStats,
		"worst_links":      worstLinks,
	})
}

func (h *Handler) ExportReports(c *gin.Context) {
	reports, err := h.Store.ListReports(c.Request.Context(), c.Query("status"), c.Query("category"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list reports", err.Error())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reports-%s.csv"`, time.Now().UTC().Format("20060102")))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "created_at", "status", "category", "subcategory", "urgency",
		"department", "risk_score", "priority", "lat", "lng", "address", "description"})
	for _, r := range reports {
		_ = w.Write([]string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			string(r.Status),
			string(r.Category),
			r.Subcategory,
			string(r.Urgency),
			r.Department,
			strconv.Itoa(r.RiskScore),
			strconv.Itoa(r.Priority),
			strconv.FormatFloat(r.Location.Lat, 'f', -1, 64),
			strconv.FormatFloat(r.Location.Lng, 'f', -1, 64),
			r.Location.Address,
			r.Description,
		})
	}
	w.Flush()
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
