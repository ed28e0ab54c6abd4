package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/database"
	natspkg "github.com/antarin-app/antarin/internal/pkg/nats"
	"github.com/antarin-app/antarin/internal/pkg/logger"
)

// Checker probes a single dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// Service aggregates dependency checkers
type Service struct {
	zl       *logger.ZapLogger
	checkers map[string]Checker
}

// NewHealthService creates a health service
func NewHealthService(zl *logger.ZapLogger) *Service {
	return &Service{
		zl:       zl,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckAll probes every registered dependency with a short timeout
func (s *Service) CheckAll(ctx context.Context) map[string]string {
	results := make(map[string]string, len(s.checkers))
	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := checker.Check(checkCtx); err != nil {
			s.zl.Warn("health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			results[name] = err.Error()
		} else {
			results[name] = "ok"
		}
		cancel()
	}
	return results
}

// NewPostgresHealthChecker probes the Postgres connection
func NewPostgresHealthChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker probes the Redis connection
func NewRedisHealthChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSHealthChecker probes the NATS connection
func NewNATSHealthChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return context.DeadlineExceeded
		}
		return nil
	})
}

type healthResponse struct {
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	ServerTime   time.Time         `json:"server_time"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		deps := svc.CheckAll(c.Request().Context())
		status := "ok"
		code := http.StatusOK
		for _, v := range deps {
			if v != "ok" {
				status = "degraded"
				code = http.StatusServiceUnavailable
				break
			}
		}

		return c.JSON(code, healthResponse{
			Service:      serviceName,
			Version:      version,
			Status:       status,
			Dependencies: deps,
			ServerTime:   time.Now(),
		})
	})
}
