package api

import (
	"context"
	"errors"

	"go-weather/internal/domain/model/external"
)

// ErrCityNotFound is returned when the provider answers a weather or forecast
// query with anything other than 200.
var ErrCityNotFound = errors.New("city not found")

// WeatherGateway defines the interface for calls to the weather provider
type WeatherGateway interface {
	// GetCurrentWeather returns the current conditions for a city name
	GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// GetCurrentWeatherByCoordinates returns the current conditions for a point
	GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) (*external.CurrentWeatherResponse, error)

	// GetForecast returns the 5 day / 3 hour forecast for a city name
	GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error)

	// SearchCities geocodes a free text query, returning at most limit matches
	SearchCities(ctx context.Context, query string, limit int) ([]external.GeoCityDTO, error)
}
