package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "slotwise/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one line per request. Outside debug mode only server
// errors are logged; client errors are already visible in the response.
func RequestLogger(logger *slog.Logger, debug bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler set the final status before it is logged.
				c.Error(err)
			}

			status := c.Response().Status
			if debug || status >= http.StatusInternalServerError {
				logRequest(c, logger, start, err)
			}

			return nil
		}
	}
}

func logRequest(c echo.Context, fallback *slog.Logger, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// The request-scoped logger carries request_id, and shop_id once authenticated.
	deliverycontext.GetLoggerOrDefault(req.Context(), fallback).LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
