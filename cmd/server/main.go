package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laa-civil/bulkclaim/internal"
	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
	"github.com/laa-civil/bulkclaim/internal/format"
	"github.com/laa-civil/bulkclaim/internal/handler"
	"github.com/laa-civil/bulkclaim/internal/metrics"
	"github.com/laa-civil/bulkclaim/internal/middleware"
	"github.com/laa-civil/bulkclaim/internal/search"
	"github.com/laa-civil/bulkclaim/internal/service"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	minimumPeriod, err := domain.ParsePeriod(cfg.MinimumSubmissionPeriod)
	if err != nil {
		return fmt.Errorf("invalid MINIMUM_SUBMISSION_PERIOD: %w", err)
	}

	// Initialize the Claims API client
	client, err := claims.NewHTTPClient(claims.Config{
		BaseURL: cfg.ClaimsAPIBaseURL,
		Timeout: cfg.ClaimsAPITimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("claims client initialization failed: %w", err)
	}

	// Initialize template renderer
	renderer, err := handler.NewRenderer(handler.RendererConfig{
		TemplatesDir: "web/templates",
		Funcs: handler.TemplateFuncs(
			format.NewCurrency(cfg.CurrencySymbol),
			format.NewDate(cfg.DateFormat),
		),
		Logger: logger,
		IsDev:  cfg.Env == "development",
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}
	logger.Info("Templates loaded", "count", len(renderer.ListTemplates()))

	// Initialize services
	summaryService := service.NewSummaryService(client, logger)
	costsService := service.NewCostsService(client, logger)
	matterStartsService := service.NewMatterStartsService(client, logger)
	messagesService := service.NewMessagesService(client, logger)

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(renderer)
	uploadHandler := handler.NewUploadHandler(handler.UploadHandlerConfig{
		Client:         client,
		Renderer:       renderer,
		Logger:         logger,
		Offices:        cfg.AuthorizedOffices,
		ProviderUserID: cfg.ProviderUserID,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedFormats: cfg.AllowedUploadFormats,
	})
	searchHandler := handler.NewSearchHandler(handler.SearchHandlerConfig{
		Summaries:       summaryService,
		Validator:       search.NewValidator(),
		Renderer:        renderer,
		Logger:          logger,
		Offices:         cfg.AuthorizedOffices,
		MinimumPeriod:   minimumPeriod,
		DefaultPageSize: cfg.DefaultPageSize,
	})
	submissionHandler := handler.NewSubmissionHandler(
		client, costsService, matterStartsService, messagesService,
		renderer, logger, cfg.DefaultPageSize,
	)
	claimHandler := handler.NewClaimHandler(
		client, messagesService, renderer, logger, cfg.DefaultPageSize,
	)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Static files
	staticFS := http.FileServer(http.Dir("web/static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticFS))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (basic auth when credentials are configured)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	// Pages
	mux.HandleFunc("GET /", homeHandler.Show)
	mux.HandleFunc("GET /upload", uploadHandler.ShowForm)
	mux.HandleFunc("POST /upload", uploadHandler.Submit)
	mux.HandleFunc("GET /submissions/search", searchHandler.ShowForm)
	mux.HandleFunc("GET /submissions/search/results", searchHandler.Results)
	mux.HandleFunc("GET /submissions/{id}", submissionHandler.Show)
	mux.HandleFunc("GET /submissions/{id}/claims/{claimID}", claimHandler.Show)

	// Middleware stack: logging outermost, then metrics and headers
	isSecure := cfg.Env != "development"
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	root := middleware.Stack(loggingMw.Handler, metrics.Middleware, securityMw.Handler)(mux)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
