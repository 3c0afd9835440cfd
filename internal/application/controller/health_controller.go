package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary Service health
// @Description Data source mode and the result of the last upstream check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Health status"
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.CheckHealth())
}
