package configs

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"go-weather/pkg/resource"
)

// WeatherConfig groups the upstream provider settings.
type WeatherConfig struct {
	APIKey            string
	DemoKey           string
	BaseURL           string
	GeoURL            string
	Units             string
	DefaultCity       string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	HealthCron        string
	CheckCity         string
}

// DemoMode reports whether no usable credential is configured.
func (w WeatherConfig) DemoMode() bool {
	return w.APIKey == "" || w.APIKey == w.DemoKey
}

type EnvConfig struct {
	ApplicationName string
	Port            string
	ContextPath     string
	Weather         WeatherConfig
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()
	Env = Load()
}

// Load builds the configuration from application.yml and the environment.
func Load() *EnvConfig {
	return &EnvConfig{
		ApplicationName: getStringOrDefault("app.name", "APPLICATION_NAME", "go-weather"),
		Port:            getStringOrDefault("app.server.port", "PORT", "5000"),
		ContextPath:     resource.GetStringOrDefault("app.server.context-path", "/api"),
		Weather: WeatherConfig{
			APIKey:            strings.TrimSpace(resource.GetString("app.weather.api-key")),
			DemoKey:           resource.GetStringOrDefault("app.weather.demo-key", "demo_key"),
			BaseURL:           resource.GetStringOrDefault("app.weather.base-url", "http://api.openweathermap.org/data/2.5"),
			GeoURL:            resource.GetStringOrDefault("app.weather.geo-url", "http://api.openweathermap.org/geo/1.0"),
			Units:             resource.GetStringOrDefault("app.weather.units", "metric"),
			DefaultCity:       resource.GetStringOrDefault("app.weather.default-city", "London"),
			ConnectionTimeout: resource.GetDuration("app.weather.client.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather.client.read-timeout"),
			HealthCron:        resource.GetString("app.weather.health.cron"),
			CheckCity:         resource.GetStringOrDefault("app.weather.health.check-city", "London"),
		},
	}
}

// getStringOrDefault prefers the property, then the raw environment variable.
func getStringOrDefault(propertyKey, envKey, defaultValue string) string {
	if value := resource.GetString(propertyKey); value != "" {
		return value
	}
	if value := viper.GetString(envKey); value != "" {
		return value
	}
	return defaultValue
}
