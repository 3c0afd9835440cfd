package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
)

const (
	forecastWindow    = 40
	searchLimit       = 5
	minSearchLength   = 2
	defaultCity       = "London"
	operationCurrent  = "current"
	operationForecast = "forecast"
	operationSearch   = "search"
)

// Config selects the data source and presentation settings of the usecase
type Config struct {
	DemoMode    bool
	DefaultCity string
	// Location is used for sunrise/sunset and forecast dates. Defaults to time.Local.
	Location *time.Location
}

type weatherUseCase struct {
	demoMode     bool
	defaultCity  string
	location     *time.Location
	apiGateway   api.WeatherGateway
	demoSnapshot entity.WeatherSnapshot
	now          func() time.Time
}

func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway) UseCase {
	city := config.DefaultCity
	if city == "" {
		city = defaultCity
	}
	loc := config.Location
	if loc == nil {
		loc = time.Local
	}

	return &weatherUseCase{
		demoMode:     config.DemoMode,
		defaultCity:  city,
		location:     loc,
		apiGateway:   apiGateway,
		demoSnapshot: newDemoSnapshot(time.Now().In(loc)),
		now:          time.Now,
	}
}

func (uc *weatherUseCase) DemoMode() bool {
	return uc.demoMode
}

// GetCurrentWeather returns current conditions for a city, "" meaning the default city
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, city string) (*entity.WeatherSnapshot, error) {
	city = uc.cityOrDefault(city)

	if uc.demoMode {
		snapshot := uc.demoSnapshot
		snapshot.City = city
		metrics.ObserveLookup(operationCurrent, metrics.SourceDemo, metrics.OutcomeOK)
		return &snapshot, nil
	}

	log.Debug(msg.GetMessage("weather.current.fetch", city), zap.String("city", city))
	resp, err := uc.apiGateway.GetCurrentWeather(ctx, city)
	metrics.ObserveLookup(operationCurrent, metrics.SourceLive, outcomeOf(err))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", city, err)
	}

	return toSnapshot(resp, uc.now(), uc.location), nil
}

// GetCurrentWeatherByCoordinates returns current conditions for a point. Demo
// mode has no coordinates in its fixture and answers for the default city.
func (uc *weatherUseCase) GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) (*entity.WeatherSnapshot, error) {
	if uc.demoMode {
		return uc.GetCurrentWeather(ctx, "")
	}

	point := fmt.Sprintf("%g,%g", lat, lon)
	log.Debug(msg.GetMessage("weather.current.fetch", point), zap.Float64("lat", lat), zap.Float64("lon", lon))
	resp, err := uc.apiGateway.GetCurrentWeatherByCoordinates(ctx, lat, lon)
	metrics.ObserveLookup(operationCurrent, metrics.SourceLive, outcomeOf(err))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", point, err)
	}

	return toSnapshot(resp, uc.now(), uc.location), nil
}

// GetForecast returns up to 40 three-hour forecast entries for a city
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string) (*entity.ForecastBundle, error) {
	city = uc.cityOrDefault(city)

	if uc.demoMode {
		metrics.ObserveLookup(operationForecast, metrics.SourceDemo, metrics.OutcomeOK)
		return demoForecast(city, uc.now().In(uc.location)), nil
	}

	log.Debug(msg.GetMessage("weather.forecast.fetch", city), zap.String("city", city))
	resp, err := uc.apiGateway.GetForecast(ctx, city)
	metrics.ObserveLookup(operationForecast, metrics.SourceLive, outcomeOf(err))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", city, err)
	}

	return toForecastBundle(resp, uc.location), nil
}

// SearchCities returns cities matching query. Provider failures are logged and
// reported as no matches, unlike the other two lookups.
func (uc *weatherUseCase) SearchCities(ctx context.Context, query string) []entity.CityMatch {
	if utf8.RuneCountInString(query) < minSearchLength {
		metrics.ObserveLookup(operationSearch, uc.source(), metrics.OutcomeSkipped)
		return []entity.CityMatch{}
	}

	if uc.demoMode {
		metrics.ObserveLookup(operationSearch, metrics.SourceDemo, metrics.OutcomeOK)
		return demoSearch(query)
	}

	results, err := uc.apiGateway.SearchCities(ctx, query, searchLimit)
	metrics.ObserveLookup(operationSearch, metrics.SourceLive, outcomeOf(err))
	if err != nil {
		log.Warn(msg.GetMessage("weather.error.search-failed", query, err), zap.String("query", query), zap.Error(err))
		return []entity.CityMatch{}
	}

	return toCityMatches(results)
}

func (uc *weatherUseCase) cityOrDefault(city string) string {
	if strings.TrimSpace(city) == "" {
		return uc.defaultCity
	}
	return city
}

func (uc *weatherUseCase) source() string {
	if uc.demoMode {
		return metrics.SourceDemo
	}
	return metrics.SourceLive
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, api.ErrCityNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
