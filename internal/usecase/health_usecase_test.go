package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cvcraft-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthUsecase_Check(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("dial tcp: connection refused") },
	})

	report := uc.Check(context.Background())

	assert.Equal(t, "degraded", report["status"])
	assert.Equal(t, "ok", report["database"])
	assert.Equal(t, "unavailable", report["redis"], "error text stays in the log")
}

func TestHealthUsecase_ChecksAreBounded(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	report := uc.Check(ctx)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "unavailable", report["slow"])
}

func TestHealthUsecase_NoChecks(t *testing.T) {
	report := usecase.NewHealthUsecase(nil).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok"}, report)
}
