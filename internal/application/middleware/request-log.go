package middleware

import (
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware with custom log output.
// contextPath is the prefix of the API group, where the health route lives.
func SetupRequestLogger(e *echo.Echo, contextPath string) {
	quietPaths := quietPrefixes(contextPath)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			return isQuiet(c.Request().URL.Path, quietPaths)
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
				)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
					zap.Error(v.Error),
				)
			}
			return nil
		},
	}))
}

// quietPrefixes lists the paths kept out of the request log.
func quietPrefixes(contextPath string) []string {
	return []string{path.Join("/", contextPath, "health"), "/metrics", "/swagger/", "/static/"}
}

func isQuiet(requestPath string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(requestPath, prefix) {
			return true
		}
	}
	return false
}
