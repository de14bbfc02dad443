package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/extractor-service/internal/delivery/http/handler"
	"github.com/user/extractor-service/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /health", h.HandleHealthCheck)
	mux.HandleFunc("POST /extract", h.HandleExtract)
	mux.HandleFunc("POST /playwright", h.HandlePlaywright)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)
	chainedHandler = middleware.CORS(chainedHandler)

	return chainedHandler
}
