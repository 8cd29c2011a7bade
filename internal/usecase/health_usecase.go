package usecase

import (
	"context"
	"log/slog"
	"time"

	"cvcraft-backend/pkg/logger"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

// Check reports "ok" or "unavailable" per dependency, plus an overall
// "status" that turns "degraded" when any check fails.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	report := map[string]string{"status": "ok"}

	for name, check := range u.checks {
		checkCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := check(checkCtx)
		cancel()
		if err != nil {
			log := logger.Log
			if log == nil {
				log = slog.Default()
			}
			log.Warn("Health check failed", "dependency", name, "error", err)
			report[name] = "unavailable"
			report["status"] = "degraded"
			continue
		}
		report[name] = "ok"
	}
	return report
}
