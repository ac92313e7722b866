package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
)

// RequireAdmin rejects requests without an admin scope with Unauthorized.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityOf(c).Admin == nil {
				return response.Fail(c, apperr.Unauthorized())
			}
			return next(c)
		}
	}
}

// RequireUser rejects API requests without a user scope with NotLoggedIn.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityOf(c).User == nil {
				return response.Fail(c, apperr.NotLoggedIn())
			}
			return next(c)
		}
	}
}

// RedirectAnonymous sends page requests without a user scope to to.
func RedirectAnonymous(to string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityOf(c).User == nil {
				return c.Redirect(http.StatusFound, to)
			}
			return next(c)
		}
	}
}
