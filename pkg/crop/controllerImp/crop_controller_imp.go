package controllerImp

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/crop/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/crop/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
)

const msgNameGuRequired = "ગુજરાતી નામ જરૂરી છે"

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) controller.CropController { return &CropCtrl{repo} }

type createReq struct {
	NameGu string `json:"name_gu"`
	NameEn string `json:"name_en"`
}

func (h *CropCtrl) List(c echo.Context) error {
	crops, err := h.repo.List()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"crops": crops})
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	if strings.TrimSpace(req.NameGu) == "" {
		return response.Fail(c, apperr.Validation(msgNameGuRequired))
	}
	crop := &entities.Crop{NameGu: req.NameGu, NameEn: req.NameEn}
	if err := h.repo.Create(crop); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"crop_id": crop.ID})
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, nil)
}
