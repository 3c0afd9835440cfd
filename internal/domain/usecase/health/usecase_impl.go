package health

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
)

const checkLimit = 1

type healthUseCase struct {
	demoMode   bool
	checkCity  string
	apiGateway api.WeatherGateway
	now        func() time.Time

	mutex    sync.RWMutex
	upstream model.ComponentHealthStatus
}

func NewHealthUseCase(demoMode bool, checkCity string, apiGateway api.WeatherGateway) UseCase {
	upstream := model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "No check executed yet"},
	}
	if demoMode {
		upstream.Details = map[string]string{"mode": model.ModeDemo}
	}

	return &healthUseCase{
		demoMode:   demoMode,
		checkCity:  checkCity,
		apiGateway: apiGateway,
		now:        time.Now,
		upstream:   upstream,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	useCase.mutex.RLock()
	upstream := model.ComponentHealthStatus{
		Status:  useCase.upstream.Status,
		Details: make(map[string]string, len(useCase.upstream.Details)),
	}
	for key, value := range useCase.upstream.Details {
		upstream.Details[key] = value
	}
	useCase.mutex.RUnlock()

	overallStatus := model.StatusUp
	if upstream.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	mode := model.ModeLive
	if useCase.demoMode {
		mode = model.ModeDemo
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Mode:     mode,
		Upstream: upstream,
	}
}

// CheckUpstream is a no-op in demo mode, where the provider is never contacted.
func (useCase *healthUseCase) CheckUpstream(ctx context.Context) error {
	if useCase.demoMode {
		return nil
	}

	start := useCase.now()
	_, err := useCase.apiGateway.SearchCities(ctx, useCase.checkCity, checkLimit)
	latency := useCase.now().Sub(start)

	details := map[string]string{
		"check_city": useCase.checkCity,
		"last_check": start.UTC().Format(time.RFC3339),
		"latency_ms": strconv.FormatInt(latency.Milliseconds(), 10),
	}
	status := model.StatusUp
	if err != nil {
		status = model.StatusDown
		details["last_error"] = err.Error()
		metrics.UpstreamUp.Set(0)
		log.Warn(msg.GetMessage("health.cron.down", err))
	} else {
		metrics.UpstreamUp.Set(1)
		log.Info(msg.GetMessage("health.cron.up", latency))
	}

	useCase.mutex.Lock()
	useCase.upstream = model.ComponentHealthStatus{Status: status, Details: details}
	useCase.mutex.Unlock()

	return err
}
