package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docval/internal/config"
	"docval/internal/handler"
	"docval/internal/metrics"
	"docval/internal/parser"
	"docval/internal/parser/claude"
	"docval/internal/parser/gemini"
	"docval/internal/parser/openai"
	"docval/internal/parser/pdftext"
	"docval/internal/policy"
	"docval/internal/router"
	"docval/internal/service"
	s3storage "docval/internal/storage/s3"
	"docval/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.SetFlags(cfg.Log.Flags())
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	policies, err := policy.LoadFile(cfg.Policy.File)
	if err != nil {
		return fmt.Errorf("failed to load policies: %w", err)
	}
	log.Printf("Loaded policies for %d countries", len(policies.Countries()))

	// Register extraction providers
	parser.RegisterProvider("openai", openai.Factory)
	parser.RegisterProvider("claude", claude.Factory)
	parser.RegisterProvider("gemini", gemini.Factory)

	extractor, err := parser.FromConfig(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}
	if extractor == nil {
		log.Printf("No extraction provider configured; only record validation is available")
	}

	// Metrics
	var m *metrics.Metrics
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	engine := validator.NewEngine(policies, validator.WithWorkers(cfg.Validation.Workers))

	svcOpts := []service.ValidationServiceOption{service.WithMetrics(m)}
	if cfg.S3.Enabled() {
		storage, err := s3storage.NewS3Client(&cfg.S3, cfg.Validation.MaxFileSizeBytes())
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		svcOpts = append(svcOpts, service.WithObjectStorage(storage, cfg.S3.Bucket))
	}

	// Initialize services
	validationSvc := service.NewValidationService(engine, policies, pdftext.NewExtractor(), extractor, &cfg.Validation, svcOpts...)
	policySvc := service.NewPolicyService(policies)

	// Initialize handlers
	validationH := handler.NewValidationHandler(validationSvc, cfg.Validation.MaxFileSizeBytes())
	policyH := handler.NewPolicyHandler(policySvc)
	healthH := handler.NewHealthHandler(map[string]handler.ReadinessCheck{
		"policies": func() error {
			if len(policies.Countries()) == 0 {
				return errors.New("policy table is empty")
			}
			return nil
		},
	})

	r := router.Setup(validationH, policyH, healthH, router.Options{
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		Metrics:            m,
		MetricsPath:        cfg.Metrics.Path,
		MetricsHandler:     metricsHandler,
		MaxMultipartMemory: cfg.Validation.MaxFileSizeBytes(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
