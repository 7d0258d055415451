package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gyeongsan/ansimtalk-backend/internal/ai"
	"github.com/gyeongsan/ansimtalk-backend/internal/config"
	"github.com/gyeongsan/ansimtalk-backend/internal/db"
	"github.com/gyeongsan/ansimtalk-backend/internal/geocode"
	httpapi "github.com/gyeongsan/ansimtalk-backend/internal/http"
	"github.com/gyeongsan/ansimtalk-backend/internal/observability"
	"github.com/gyeongsan/ansimtalk-backend/internal/service"
	"github.com/gyeongsan/ansimtalk-backend/internal/traffic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "ansimtalk-backend").Logger()

	store, err := db.Open(cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open report store")
	}
	defer store.Close()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	var classifier ai.Classifier
	if cfg.AIURL == "" {
		classifier = ai.MockClassifier{ModelVersion: "mock-v1"}
		logger.Info().Msg("using mock classifier")
	} else {
		classifier = ai.HTTPClassifier{BaseURL: cfg.AIURL, Metrics: metrics}
	}

	var geocoder geocode.Geocoder
	if cfg.GeocoderURL != "" {
		geocoder = &geocode.NominatimGeocoder{BaseURL: cfg.GeocoderURL}
	}

	reports := &service.ReportService{
		Store:    store,
		AI:       classifier,
		Geocoder: geocoder,
		Clock:    clock,
		Metrics:  metrics,
		Logger:   logger,
	}

	engine := traffic.NewEngine(traffic.DefaultBaselines(), traffic.DefaultWeatherWeights(), clock)
	router := httpapi.Router(cfg, store, reports, engine, traffic.DefaultSegments(), metrics, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
