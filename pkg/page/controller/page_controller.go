package controller

import "github.com/labstack/echo/v4"

type PageController interface {
	// Serve returns a handler for STATIC_DIR/pages/<name>.html.
	Serve(name string) echo.HandlerFunc
	UploadSubmit(c echo.Context) error
}
