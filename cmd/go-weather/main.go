package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
	"go-weather/web"
)

const shutdownTimeout = 10 * time.Second

// @title go-weather
// @version 1.0
// @description Weather proxy with current conditions, 5 day forecast and city search. Serves sample data when no provider key is configured.
// @BasePath /api
func main() {
	env := configs.Env
	defer log.Sync()

	log.Info(msg.GetMessage("app.start", env.ApplicationName))

	mode := model.ModeLive
	if env.Weather.DemoMode() {
		mode = model.ModeDemo
	}
	log.Info(msg.GetMessage("app.mode", mode))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e, env.ContextPath)
	middleware.SetupMetrics(e)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	apiGroup := e.Group(env.ContextPath)

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(api.GatewayConfig{
		BaseURL: env.Weather.BaseURL,
		GeoURL:  env.Weather.GeoURL,
		APIKey:  env.Weather.APIKey,
		Units:   env.Weather.Units,
	}, http.ClientOptions{
		ConnectionTimeout: env.Weather.ConnectionTimeout,
		ReadTimeout:       env.Weather.ReadTimeout,
	})

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		DemoMode:    env.Weather.DemoMode(),
		DefaultCity: env.Weather.DefaultCity,
	}, weatherGateway)
	healthUseCase := health.NewHealthUseCase(env.Weather.DemoMode(), env.Weather.CheckCity, weatherGateway)

	// Init Controller
	homeController := controller.NewHomeController(e, controller.HomePage{
		AppName:     env.ApplicationName,
		DemoMode:    weatherUseCase.DemoMode(),
		DefaultCity: env.Weather.DefaultCity,
	}, web.Static())
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	homeController.InitHomeRoutes()
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	docs.SwaggerInfo.BasePath = env.ContextPath
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	upstreamScheduler := schedule.NewUpstreamScheduler(healthUseCase, env.Weather.HealthCron)
	if err := upstreamScheduler.InitUpstreamScheduleTasks(env.Weather.DemoMode()); err != nil {
		log.Fatalf("failed to schedule upstream check: %v", err)
	}

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", env.ApplicationName, env.Port))
		if err := e.Start(":" + env.Port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info(msg.GetMessage("app.stop", env.ApplicationName))
	upstreamScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
}
