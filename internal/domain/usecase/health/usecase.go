package health

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	CheckHealth() model.HealthResponse

	// CheckUpstream runs one geocoding request against the provider and records the result
	CheckUpstream(ctx context.Context) error
}
