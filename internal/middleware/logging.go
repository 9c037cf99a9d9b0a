package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger returns middleware that logs every request with slog.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if id := MemberID(c); id != "" {
				attrs = append(attrs, "member_id", id)
			}

			switch {
			case res.Status >= 500:
				slog.Error("request failed", attrs...)
			case res.Status >= 400:
				slog.Warn("request rejected", attrs...)
			default:
				slog.Info("request completed", attrs...)
			}
			// Already handled via c.Error; echo skips committed responses.
			return err
		}
	}
}
