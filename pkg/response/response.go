package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
)

// OK writes {success:true, ...payload}.
func OK(c echo.Context, payload echo.Map) error {
	out := echo.Map{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	return c.JSON(http.StatusOK, out)
}

// Fail writes {success:false, message} with the status of err's kind.
func Fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"success": false, "message": apperr.Message(err)})
}

// ErrorHandler is the boundary for errors returned by handlers and
// middleware: app errors keep their kind, echo errors keep their status,
// anything else is logged and becomes a generic 500.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		status := apperr.Status(err)
		msg := apperr.Message(err)
		if errors.As(err, &he) {
			status = he.Code
			if status < 500 {
				msg = apperr.MsgInvalidRequest
				if status == http.StatusNotFound {
					msg = "પૃષ્ઠ મળ્યું નથી"
				}
			}
		}
		if status >= 500 {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{"success": false, "message": msg})
		}
		if werr != nil {
			logger.Warn("write error response", zap.Error(werr))
		}
	}
}
