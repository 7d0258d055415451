package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gyeongsan/ansimtalk-backend/internal/config"
	"github.com/gyeongsan/ansimtalk-backend/internal/db"
	"github.com/gyeongsan/ansimtalk-backend/internal/http/handlers"
	"github.com/gyeongsan/ansimtalk-backend/internal/http/middleware"
	"github.com/gyeongsan/ansimtalk-backend/internal/models"
	"github.com/gyeongsan/ansimtalk-backend/internal/observability"
	"github.com/gyeongsan/ansimtalk-backend/internal/service"
	"github.com/gyeongsan/ansimtalk-backend/internal/traffic"

	_ "github.com/gyeongsan/ansimtalk-backend/docs"
)

func Router(cfg config.Config, store *db.Store, reports *service.ReportService, engine traffic.Engine, segments []models.TrafficSegment, metrics *observability.Metrics, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		Reports:   reports,
		Engine:    engine,
		Segments:  segments,
		Validator: validator.New(),
		Metrics:   metrics,
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/reports", h.SubmitReport)
		api.GET("/reports", h.ReportsList)
		api.GET("/reports/:id", h.ReportDetails)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PATCH("/reports/:id/status", h.UpdateReportStatus)
		admin.GET("/reports/export", h.ExportReports)
		admin.GET("/traffic", h.TrafficOverlay)
		admin.GET("/traffic/alerts", h.TrafficAlerts)
		admin.GET("/traffic/stats", h.TrafficStats)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
