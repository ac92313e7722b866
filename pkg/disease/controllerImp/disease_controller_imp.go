package controllerImp

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/disease/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/disease/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
)

const msgNameGuRequired = "ગુજરાતી નામ જરૂરી છે"

type DiseaseCtrl struct{ repo repository.DiseaseRepository }

func New(repo repository.DiseaseRepository) controller.DiseaseController { return &DiseaseCtrl{repo} }

type createReq struct {
	NameGu     string   `json:"name_gu"`
	NameEn     string   `json:"name_en"`
	Crop       string   `json:"crop"`
	Symptoms   []string `json:"symptoms"`
	Treatment  []string `json:"treatment"`
	Prevention []string `json:"prevention"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (h *DiseaseCtrl) List(c echo.Context) error {
	diseases, err := h.repo.List()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"diseases": diseases})
}

func (h *DiseaseCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	if strings.TrimSpace(req.NameGu) == "" {
		return response.Fail(c, apperr.Validation(msgNameGuRequired))
	}
	d := &entities.Disease{
		NameGu:     req.NameGu,
		NameEn:     req.NameEn,
		Crop:       req.Crop,
		Symptoms:   orEmpty(req.Symptoms),
		Treatment:  orEmpty(req.Treatment),
		Prevention: orEmpty(req.Prevention),
	}
	if err := h.repo.Create(d); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"disease_id": d.ID})
}

func (h *DiseaseCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, nil)
}
