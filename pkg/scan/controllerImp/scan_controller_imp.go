package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/middleware"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scan/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scan/service"
)

const msgNoFileProvided = "કોઈ ફાઇલ પ્રદાન કરવામાં આવી નથી"

type scanCtrl struct{ svc service.ScanService }

func NewScanController(svc service.ScanService) controller.ScanController {
	return &scanCtrl{svc}
}

func (h *scanCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return response.Fail(c, apperr.Validation(msgNoFileProvided))
	}
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return err
		}
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	f, err := fh.Open()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	defer f.Close()

	res, err := h.svc.Process(c.Request().Context(), service.Upload{
		Filename: fh.Filename,
		Content:  f,
		CropType: c.FormValue("crop_type"),
		UserID:   middleware.IdentityOf(c).UserID(),
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, echo.Map{
		"result":     res.Diagnosis,
		"image_path": res.ImagePath,
	})
}
