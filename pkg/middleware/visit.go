package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VisitRecorder interface {
	Track(ip string) error
}

// TrackVisit logs one Visit per request. A failed insert is logged and
// never blocks the page.
func TrackVisit(rec VisitRecorder, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := rec.Track(c.RealIP()); err != nil {
				logger.Warn("track visit", zap.Error(err))
			}
			return next(c)
		}
	}
}
