package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/user/extractor-service/internal/adapter/chromedp_renderer"
	"github.com/user/extractor-service/internal/adapter/readability"
	"github.com/user/extractor-service/internal/adapter/tavily"
	"github.com/user/extractor-service/internal/delivery/http/handler"
	"github.com/user/extractor-service/internal/delivery/http/router"
	"github.com/user/extractor-service/internal/usecase"
	"github.com/user/extractor-service/pkg/config"
	"github.com/user/extractor-service/pkg/logger"
	"github.com/user/extractor-service/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger.Init(os.Stdout, logLevel)
	slog.Info("Logger initialized", "level", logLevel.String())

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	// --- Strategies ---
	renderOpts := chromedp_renderer.Options{
		PageLoadTimeout: cfg.PageLoadTimeout,
		SettleDelay:     cfg.SettleDelay,
		SelectorWait:    cfg.SelectorWait,
	}
	staticStrategy := readability.NewStrategy(cfg.StaticTimeout)
	renderStrategy := chromedp_renderer.NewStrategy(renderOpts)
	stealthStrategy := chromedp_renderer.NewStealthStrategy(renderOpts)
	tavilyStrategy := tavily.NewStrategy(tavily.NewClient(cfg.TavilyAPIKey))

	if cfg.TavilyAPIKey == "" {
		slog.Warn("TAVILY_API_KEY not set; external fallback will reject with a configuration error")
	}

	// --- Use Cases ---
	fastExtractor := usecase.NewExtractor(usecase.ProfileFast, staticStrategy)
	dynamicExtractor := usecase.NewExtractor(usecase.ProfileDynamic,
		renderStrategy, stealthStrategy, tavilyStrategy)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(fastExtractor, dynamicExtractor, cfg.TavilyAPIKey != "")
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: httpRouter,
		// A dynamic extraction can legitimately run for minutes; the write
		// timeout must outlast the whole cascade.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}
