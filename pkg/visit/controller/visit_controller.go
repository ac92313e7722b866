package controller

import "github.com/labstack/echo/v4"

type VisitController interface {
	Track(c echo.Context) error
	Stats(c echo.Context) error
}
