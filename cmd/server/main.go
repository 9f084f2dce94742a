package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mayowa-id/payment-instructions-api/internal/config"
	"github.com/mayowa-id/payment-instructions-api/internal/middleware"
	"github.com/mayowa-id/payment-instructions-api/internal/server"
	"github.com/mayowa-id/payment-instructions-api/internal/service"
	"github.com/mayowa-id/payment-instructions-api/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	mux := http.NewServeMux()
	controller := server.NewController(service.NewInstructionService())
	controller.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Middleware, outermost first: request ID, logging, metrics, then the
	// response-shaping headers.
	var handler http.Handler = mux
	handler = middleware.SecurityHeaders(middleware.CORS(handler))
	handler = middleware.Metrics(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)

	// HTTP/2 without TLS, for proxies that speak h2c.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting",
		"address", addr,
		"health", fmt.Sprintf("http://localhost%s/health", addr),
		"endpoint", fmt.Sprintf("POST http://localhost%s/payment-instructions", addr),
	)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
