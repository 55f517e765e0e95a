// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Every managed-service client is constructed once in main and passed in
package httpapi

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/smartstore/go-store-backend/internal/ai"
	"github.com/smartstore/go-store-backend/internal/config"
	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/http/handlers"
	"github.com/smartstore/go-store-backend/internal/http/middleware"
	"github.com/smartstore/go-store-backend/internal/repo"
	"github.com/smartstore/go-store-backend/internal/secrets"
	"github.com/smartstore/go-store-backend/internal/services"
)

// Clients carries the process-wide managed-service clients. All of them are
// constructed exactly once at startup and shared across requests; none are
// created per request.
type Clients struct {
	Verifier  middleware.ClaimsVerifier
	Generator ai.Generator
	Models    secrets.ModelSource
	Firestore *firestore.Client
	Blobs     services.BlobStore
	Queue     services.QueuePublisher
}

// productRepoShim adapts the repository free functions to the
// services.ProductRepo interface expected by the ProductService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type productRepoShim struct{}

// CreateProduct proxies repo.CreateProduct.
func (productRepoShim) CreateProduct(ctx context.Context, fs *firestore.Client, p *domain.Product) (*domain.Product, error) {
	return repo.CreateProduct(ctx, fs, p)
}

// ListProducts proxies repo.ListProducts.
func (productRepoShim) ListProducts(ctx context.Context, fs *firestore.Client, offset, limit int) ([]domain.Product, error) {
	return repo.ListProducts(ctx, fs, offset, limit)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per user/IP)
//  8. CORS and Security headers
//  9. Response compression (skipping the chat stream)
func RegisterRoutes(r *gin.Engine, cl Clients, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-Firebase-AppCheck",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (bounded by the upload cap plus form overhead)
	r.Use(limitBody(cfg.MaxUploadBytes + (1 << 20)))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// 9) Compress everything except the chat stream: gzip would buffer the
	// chunked response and defeat token-by-token flushing.
	chatPath := joinPath(cfg.APIBasePath, "/chat/")
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{chatPath})))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (off by default; enable for dev/staging)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← shared clients
	chatSvc := services.NewChatService(cl.Generator, cl.Models)
	productSvc := services.NewProductService(cl.Firestore, productRepoShim{})
	uploadSvc := services.NewUploadService(cl.Blobs, cl.Queue)
	h := handlers.New(chatSvc, productSvc, uploadSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)

	// The product listing is the storefront read: anyone may browse the
	// catalog without a credential.
	api.GET("/products/", h.ListProducts)

	// Everything else requires a verified bearer credential.
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cl.Verifier))
	{
		// Identity
		authed.GET("/auth/me", h.Me)

		// Chat relay (streaming)
		authed.POST("/chat/", h.Chat)

		// Products
		authed.POST("/products/", h.CreateProduct)

		// Uploads
		authed.POST("/upload/upload-xlsx", h.UploadXLSX)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

// joinPath concatenates a base path and a route without doubling slashes.
func joinPath(base, route string) string {
	if base == "" || base == "/" {
		return route
	}
	return base + route
}
