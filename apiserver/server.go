package apiserver

import (
	"context"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gofrs/uuid"
	echoprometheus "github.com/labstack/echo-contrib/prometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

type Config struct {
	// Client answers usage and estimate queries (required)
	Client nluusage.UsageClient
	// SigningKey, when set, requires an HS256 bearer token on /usage and /estimate
	SigningKey string
	// Logger sets the request logger
	Logger lager.Logger
	// EnablePanic will cause the server to crash on panic if set to true
	EnablePanic bool
}

// New creates a new server. Use ListenAndServe to start accepting connections.
// Metrics are registered with prometheus.DefaultRegisterer.
func New(cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	if !cfg.EnablePanic {
		e.Use(middleware.Recover())
	}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))

	if cfg.Logger != nil {
		echoCompatibleLogger := NewLogger(cfg.Logger)
		e.Logger = echoCompatibleLogger
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Output: echoCompatibleLogger,
		}))
	}

	registerer := prometheus.DefaultRegisterer
	gatherer, ok := registerer.(prometheus.Gatherer)
	if !ok {
		gatherer = prometheus.DefaultGatherer
	}
	requestMetrics := echoprometheus.NewPrometheus("nlu_usage_api", nil)
	e.Use(requestMetrics.HandlerFunc)
	estimateMetrics := newEstimateMetrics(registerer)

	e.GET("/", status)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	queryMiddleware := []echo.MiddlewareFunc{}
	if cfg.SigningKey != "" {
		queryMiddleware = append(queryMiddleware, echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.SigningKey),
		}))
	}
	e.GET("/usage", UsageHandler(cfg.Client), queryMiddleware...)
	e.POST("/estimate", EstimateHandler(cfg.Client, estimateMetrics), queryMiddleware...)

	return e
}

func status(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, map[string]bool{
		"ok": true,
	}, "  ")
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}

func ListenAndServe(ctx context.Context, logger lager.Logger, e *echo.Echo, addr string) error {

	ctx, shutdown := context.WithCancel(ctx)

	go func() {
		defer shutdown()
		logger.Info("started", lager.Data{
			"addr": addr,
		})
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			select {
			case <-ctx.Done():
				return
			default:
				e.Logger.Error("listen-and-serve-error", err)
			}
		}
	}()

	// Wait for parent context to get cancelled then drain with a 10s timeout
	<-ctx.Done()
	logger.Info("stopping")
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	return e.Shutdown(drainCtx)
}
