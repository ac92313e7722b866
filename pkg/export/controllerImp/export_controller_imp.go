package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/export/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/export/service"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
)

type exportCtrl struct{ svc service.ExportService }

func NewExportController(svc service.ExportService) controller.ExportController {
	return &exportCtrl{svc}
}

func (h *exportCtrl) Users(c echo.Context) error {
	file, err := h.svc.Users(c.Request().Context())
	if err != nil {
		return response.Fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Blob(http.StatusOK, service.ContentTypeXLSX, file.Data)
}
