package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/visit/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/visit/service"
)

type visitCtrl struct{ svc service.VisitService }

func NewVisitController(svc service.VisitService) controller.VisitController {
	return &visitCtrl{svc}
}

func (h *visitCtrl) Track(c echo.Context) error {
	if err := h.svc.Track(c.RealIP()); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, nil)
}

func (h *visitCtrl) Stats(c echo.Context) error {
	t, err := h.svc.Totals()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{
		"total_visits": t.Visits,
		"total_scans":  t.Scans,
		"total_users":  t.Users,
	})
}
