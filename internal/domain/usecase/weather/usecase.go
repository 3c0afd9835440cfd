package weather

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// GetCurrentWeather returns current conditions for a city, "" meaning the default city
	GetCurrentWeather(ctx context.Context, city string) (*entity.WeatherSnapshot, error)

	// GetCurrentWeatherByCoordinates returns current conditions for a point
	GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) (*entity.WeatherSnapshot, error)

	// GetForecast returns up to 40 three-hour forecast entries for a city
	GetForecast(ctx context.Context, city string) (*entity.ForecastBundle, error)

	// SearchCities returns cities matching query. It never fails: errors yield an empty list
	SearchCities(ctx context.Context, query string) []entity.CityMatch

	// DemoMode reports whether fixtures are served instead of provider data
	DemoMode() bool
}
