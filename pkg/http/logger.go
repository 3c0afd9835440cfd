package http

import (
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a non-2xx response or a transport failure (httpStatus 0)
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapLogger writes upstream traffic through pkg/log. Requests and successes go
// to debug, failures to warn.
type ZapLogger struct {
	Upstream string
}

// NewZapLogger returns an HTTPLogger tagging every entry with the upstream name.
func NewZapLogger(upstream string) *ZapLogger {
	return &ZapLogger{Upstream: upstream}
}

func (l *ZapLogger) LogRequest(method, url string) {
	log.Debug(msg.GetMessage("upstream.request", method, url),
		zap.String("upstream", l.Upstream),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, httpStatus int, _ string, latency int64) {
	log.Debug(msg.GetMessage("upstream.response", method, url, httpStatus, latency),
		zap.String("upstream", l.Upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("upstream.failure", method, url, httpStatus, latency, err),
		zap.String("upstream", l.Upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody, 512)),
		zap.Error(err),
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
