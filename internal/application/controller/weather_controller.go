package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrentWeather)
	controller.api.GET("/weather/forecast", controller.GetForecast)
	controller.api.GET("/weather/search", controller.SearchCities)
}

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Current conditions for a city. Without a city, valid lat/lon select the nearest location; otherwise London is used
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string false "City name" default(London)
// @Param lat query number false "Latitude, used only when city is empty"
// @Param lon query number false "Longitude, used only when city is empty"
// @Success 200 {object} entity.WeatherSnapshot "Current conditions"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Upstream request failed"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	ctx := c.Request().Context()
	city := c.QueryParam("city")

	var snapshot *entity.WeatherSnapshot
	var err error

	lat, lon, hasPoint := numberutils.ToCoordinates(c.QueryParam("lat"), c.QueryParam("lon"))
	if strings.TrimSpace(city) == "" && hasPoint {
		snapshot, err = controller.useCase.GetCurrentWeatherByCoordinates(ctx, lat, lon)
	} else {
		snapshot, err = controller.useCase.GetCurrentWeather(ctx, city)
	}

	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetForecast godoc
// @Summary Get 5 day forecast
// @Description Up to 40 three-hour forecast entries for a city
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string false "City name" default(London)
// @Success 200 {object} entity.ForecastBundle "Forecast"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Upstream request failed"
// @Router /weather/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	bundle, err := controller.useCase.GetForecast(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(http.StatusOK, bundle)
}

// SearchCities godoc
// @Summary Search cities
// @Description Up to 5 cities matching the query. Queries shorter than 2 characters and upstream failures yield an empty list
// @Tags weather
// @Accept json
// @Produce json
// @Param q query string true "City name fragment"
// @Success 200 {array} entity.CityMatch "Matching cities"
// @Router /weather/search [get]
func (controller *WeatherController) SearchCities(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.SearchCities(c.Request().Context(), c.QueryParam("q")))
}

// lookupError answers 404 for unknown cities and 500 with the underlying
// failure message otherwise. The wrapped chain is only logged.
func lookupError(c echo.Context, err error) error {
	if errors.Is(err, api.ErrCityNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("weather.error.city-not-found")})
	}

	log.Error(msg.GetMessage("weather.error.lookup-failed", c.Request().URL.Path, err),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": rootCause(err).Error()})
}

// rootCause returns the innermost error, stopping at *url.Error so transport
// failures keep their (redacted) request line.
func rootCause(err error) error {
	for {
		if _, ok := err.(*url.Error); ok {
			return err
		}
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
