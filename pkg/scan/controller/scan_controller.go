package controller

import "github.com/labstack/echo/v4"

type ScanController interface {
	Upload(c echo.Context) error
}
