package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/admin/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/admin/service"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
)

type adminCtrl struct{ svc service.AdminService }

func NewAdminController(svc service.AdminService) controller.AdminController {
	return &adminCtrl{svc}
}

func (h *adminCtrl) Stats(c echo.Context) error {
	d, err := h.svc.Dashboard()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{
		"stats":         d.Stats,
		"recent_visits": d.RecentVisits,
		"users":         d.Users,
	})
}

func (h *adminCtrl) ScanRecords(c echo.Context) error {
	rows, err := h.svc.ScanRecords()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"records": rows})
}
