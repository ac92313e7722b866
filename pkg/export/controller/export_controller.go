package controller

import "github.com/labstack/echo/v4"

type ExportController interface {
	Users(c echo.Context) error
}
