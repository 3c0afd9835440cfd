package api

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strconv"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

const apiKeyParam = "appid"

// openWeatherGateway implements WeatherGateway against OpenWeatherMap
type openWeatherGateway struct {
	dataClient *http.Client
	geoClient  *http.Client
	apiKey     string
	units      string
}

// GatewayConfig holds the endpoints and credential used by the gateway
type GatewayConfig struct {
	BaseURL string
	GeoURL  string
	APIKey  string
	Units   string
}

// NewWeatherGateway creates a WeatherGateway with one HTTP client per upstream host.
// Redirects are always followed.
func NewWeatherGateway(config GatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.RedactedQueryParams = append(clientOptions.RedactedQueryParams, apiKeyParam)
	clientOptions.FollowRedirect = true

	dataOptions := clientOptions
	geoOptions := clientOptions
	if clientOptions.Logger == nil {
		dataOptions.Logger = http.NewZapLogger("openweather-data")
		geoOptions.Logger = http.NewZapLogger("openweather-geo")
	}

	units := config.Units
	if units == "" {
		units = "metric"
	}

	return &openWeatherGateway{
		dataClient: http.NewHttpClient(config.BaseURL, dataOptions),
		geoClient:  http.NewHttpClient(config.GeoURL, geoOptions),
		apiKey:     config.APIKey,
		units:      units,
	}
}

// GetCurrentWeather returns the current conditions for a city name
func (g *openWeatherGateway) GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	return g.fetchCurrent(ctx, map[string]string{
		"q":         city,
		apiKeyParam: g.apiKey,
		"units":     g.units,
	})
}

// GetCurrentWeatherByCoordinates returns the current conditions for a point
func (g *openWeatherGateway) GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) (*external.CurrentWeatherResponse, error) {
	return g.fetchCurrent(ctx, map[string]string{
		"lat":       strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":       strconv.FormatFloat(lon, 'f', -1, 64),
		apiKeyParam: g.apiKey,
		"units":     g.units,
	})
}

func (g *openWeatherGateway) fetchCurrent(ctx context.Context, params map[string]string) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := g.dataClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(params).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err := classify(status, errResp, err); err != nil {
		return nil, err
	}
	return successResp.(*external.CurrentWeatherResponse), nil
}

// GetForecast returns the 5 day / 3 hour forecast for a city name
func (g *openWeatherGateway) GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	successResp, errResp, status, err := g.dataClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"q":         city,
			apiKeyParam: g.apiKey,
			"units":     g.units,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err := classify(status, errResp, err); err != nil {
		return nil, err
	}
	return successResp.(*external.ForecastResponse), nil
}

// SearchCities geocodes a free text query, returning at most limit matches
func (g *openWeatherGateway) SearchCities(ctx context.Context, query string, limit int) ([]external.GeoCityDTO, error) {
	successResp, errResp, status, err := g.geoClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/direct").
		WithQueryParams(map[string]string{
			"q":         query,
			"limit":     strconv.Itoa(limit),
			apiKeyParam: g.apiKey,
		}).
		WithSuccessResp(&[]external.GeoCityDTO{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err := classify(status, errResp, err); err != nil {
		return nil, err
	}
	return *successResp.(*[]external.GeoCityDTO), nil
}

// classify maps the client outcome to gateway errors. Any answered status
// other than 200 is ErrCityNotFound; a 200 with an unreadable body and
// transport failures are returned as they are.
func classify(status int, errResp any, err error) error {
	if status != 0 && status != nethttp.StatusOK {
		detail := msg.GetMessage("weather.error.upstream-status", status)
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
			detail += ": " + apiErr.Message
		}
		return fmt.Errorf("%w: %s", ErrCityNotFound, detail)
	}
	if err != nil {
		return fmt.Errorf("weather provider request failed: %w", err)
	}
	return nil
}
