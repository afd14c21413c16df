package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/config"
	"bitbucket.org/mmdatafocus/factory_backend/models"
	"bitbucket.org/mmdatafocus/factory_backend/models/reports"
	"bitbucket.org/mmdatafocus/factory_backend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

const defaultPort = "8080"

var tracer = otel.Tracer("factory-backend")

// RateLimiter is an optional redis-backed per-IP limiter.
type RateLimiter struct {
	clientFn func() *redis.Client
	limit    int64
	window   time.Duration
}

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, funcName string, err error) {
	correlationId, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
	config.LogError(config.GetLogger(), "server.go", funcName, c.FullPath(), logrus.Fields{
		"correlation_id": correlationId,
	}, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

// correlationIdMiddleware attaches an id to every request so its log lines
// can be tied back together. An incoming x-correlation-id is honored,
// otherwise one is minted; either way it is echoed on the response.
func correlationIdMiddleware(c *gin.Context) {
	correlationId := c.GetHeader("x-correlation-id")
	if correlationId == "" {
		correlationId = uuid.NewString()
	}
	c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), correlationId))
	c.Header("x-correlation-id", correlationId)
	c.Next()
}

func profitAndLossHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.profit-and-loss")
		defer span.End()

		var filter reports.DateRangeFilter
		// A malformed filter degrades to the report defaults rather than
		// failing the request.
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetProfitAndLossReport(ctx, store, filter)
		if err != nil {
			respondError(c, "profitAndLossHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func departmentalOverheadsHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.departmental-overheads")
		defer span.End()

		var filter reports.DepartmentalOverheadFilter
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetDepartmentalOverheadReport(ctx, store, filter)
		if err != nil {
			respondError(c, "departmentalOverheadsHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func inventoryValuationHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.inventory-valuation")
		defer span.End()

		var filter reports.InventoryValuationFilter
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetInventoryValuationReport(ctx, store, filter)
		if err != nil {
			respondError(c, "inventoryValuationHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func stockMovementHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.stock-movement")
		defer span.End()

		var filter reports.StockMovementFilter
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetStockMovementReport(ctx, store, filter)
		if err != nil {
			respondError(c, "stockMovementHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func purchaseOrderStatusHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.purchase-order-status")
		defer span.End()

		var filter reports.PurchaseOrderStatusFilter
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetPurchaseOrderStatusReport(ctx, store, filter)
		if err != nil {
			respondError(c, "purchaseOrderStatusHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func workOrderPerformanceHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.work-order-performance")
		defer span.End()

		var filter reports.WorkOrderPerformanceFilter
		_ = c.ShouldBindQuery(&filter)

		report, err := reports.GetWorkOrderPerformanceReport(ctx, store.WorkOrders(), filter)
		if err != nil {
			respondError(c, "workOrderPerformanceHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func dashboardHandler(store *reports.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "reports.dashboard")
		defer span.End()

		report, err := reports.GetDashboardReport(ctx, store.Stores())
		if err != nil {
			respondError(c, "dashboardHandler", err)
			return
		}
		respondSuccess(c, report)
	}
}

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "route not found"})
}

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		// Cloud Run standard env var.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	// Shutdown coordination.
	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP server ASAP so Cloud Run considers the revision healthy.
	// Until the DB is ready, report endpoints return 503.
	r := gin.New()
	r.Use(correlationIdMiddleware)
	r.Use(func(c *gin.Context) {
		// Always allow the startup probe.
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		// Gate report endpoints on DB readiness.
		if config.GetDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	// Production-safe CORS:
	// - In production, require explicit allowlist via CORS_ALLOWED_ORIGINS (comma-separated).
	// - In non-production, allow all (developer convenience).
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			// Safer default: deny all if not configured in production.
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))

	// Optional rate limiting (recommended for production).
	// Env:
	// - RATE_LIMIT_ENABLED=true
	// - RATE_LIMIT_WINDOW_SECONDS=60
	// - RATE_LIMIT_MAX_REQUESTS=600
	if strings.EqualFold(strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED")), "true") {
		limit := int64(600)
		if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_MAX_REQUESTS")); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}
		windowSec := int64(60)
		if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW_SECONDS")); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				windowSec = n
			}
		}
		rateLimiter := NewRateLimiter(config.GetRedisDB, limit, time.Duration(windowSec)*time.Second)
		r.Use(rateLimiter.RateLimitMiddleware)
	}

	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	store := reports.NewGormStore(config.GetDB)
	r.GET("/reports/profit-and-loss", profitAndLossHandler(store))
	r.GET("/reports/departmental-overheads", departmentalOverheadsHandler(store))
	r.GET("/reports/inventory-valuation", inventoryValuationHandler(store))
	r.GET("/reports/stock-movement", stockMovementHandler(store))
	r.GET("/reports/purchase-order-status", purchaseOrderStatusHandler(store))
	r.GET("/reports/work-order-performance", workOrderPerformanceHandler(store))
	r.GET("/reports/dashboard", dashboardHandler(store))
	r.NoRoute(customNotFoundHandler)

	// Start listening immediately (Cloud Run startup probe is TCP based).
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedis()

	// Now DB is ready; run migrations.
	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()
	// IMPORTANT: AutoMigrate can run DDL that blocks tables and causes 504/502 timeouts.
	// Allow disabling migrations on startup (run them as a separate job instead).
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true") {
		models.MigrateTable()
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	logger.WithFields(logrus.Fields{
		"info": "Connection Established",
	}).Info("report endpoints ready on http://localhost:", port, "/reports")
	log.Println("Server started successfully")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Drain HTTP requests.
	shutdownTimeout := 30 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	// Close Redis (best-effort).
	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only log when there are errors
		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}

// NewRateLimiter takes the client through a getter because redis connects
// after the server starts listening; a nil client disables limiting.
func NewRateLimiter(client func() *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clientFn: client,
		limit:    limit,
		window:   window,
	}
}

// Middleware function to check rate limits.
func (rl *RateLimiter) RateLimitMiddleware(c *gin.Context) {
	client := rl.clientFn()
	if client == nil {
		c.Next()
		return
	}

	// Get the IP address from the request.
	key := c.ClientIP()

	// Check if the key exists in Redis.
	exists, err := client.Exists(c.Request.Context(), key).Result()
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	// If the key doesn't exist, create it and set expiry.
	if exists == 0 {
		err := client.Set(c.Request.Context(), key, 1, rl.window).Err()
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.Next()
		return
	}

	// If the key exists, get the current count.
	count, err := client.Incr(c.Request.Context(), key).Result()
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	// If the count exceeds the limit, return an error response.
	if count > rl.limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(rl.window.Seconds())),
		})
		return
	}

	c.Next()
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
