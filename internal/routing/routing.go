package routing

import (
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/bff"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/handlers"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/lookup"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/middleware"
)

// Config holds the configuration needed for setting up routes
type Config struct {
	Handlers *handlers.Handler
	Logger   zerolog.Logger

	// RateLimit is requests per client per minute; 0 disables limiting.
	RateLimit int
}

// SetupRouter creates and configures the HTTP router with all routes and middleware
func SetupRouter(cfg Config) http.Handler {
	h := cfg.Handlers
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleIndex)
	for _, k := range lookup.Kinds {
		mux.HandleFunc("GET /lookup/"+string(k), h.HandleLookup(k))
	}
	mux.HandleFunc("GET /placeholder.png", h.HandlePlaceholder)

	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.HandleFunc("GET /readyz", h.HandleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	static := http.FileServer(http.FS(bff.Static()))
	mux.Handle("GET /static/", http.StripPrefix("/static/", cacheStatic(static)))

	// Middleware, innermost first
	var handler http.Handler = mux

	// 1. Response compression
	handler = gzhttp.GzipHandler(handler)

	// 2. Rate limiting
	if cfg.RateLimit > 0 {
		handler = middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit, time.Minute))(handler)
	}

	// 3. Security headers and script nonce
	handler = middleware.SecurityHeadersMiddleware(handler)

	// 4. Request logging and metrics
	handler = middleware.LoggingMiddleware(cfg.Logger)(handler)

	// 5. Tracing (outermost), spans named after the normalized route
	return otelhttp.NewHandler(handler, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + metrics.NormalizePath(r.URL.Path)
		}),
	)
}

func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
