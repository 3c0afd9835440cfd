package controller

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomePage is the data passed to the landing page template.
type HomePage struct {
	AppName     string
	DemoMode    bool
	DefaultCity string
}

type HomeController struct {
	router *echo.Echo
	page   HomePage
	assets fs.FS
}

func NewHomeController(router *echo.Echo, page HomePage, assets fs.FS) *HomeController {
	return &HomeController{router: router, page: page, assets: assets}
}

// InitHomeRoutes registers the landing page and its static assets
func (controller *HomeController) InitHomeRoutes() {
	controller.router.GET("/", controller.Index)
	controller.router.StaticFS("/static", controller.assets)
}

func (controller *HomeController) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", controller.page)
}
