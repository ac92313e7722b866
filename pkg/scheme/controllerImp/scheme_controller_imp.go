package controllerImp

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scheme/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scheme/repository"
)

const msgTitleRequired = "શીર્ષક જરૂરી છે"

type SchemeCtrl struct{ repo repository.SchemeRepository }

func New(repo repository.SchemeRepository) controller.SchemeController { return &SchemeCtrl{repo} }

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *SchemeCtrl) List(c echo.Context) error {
	schemes, err := h.repo.List()
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"schemes": schemes})
}

func (h *SchemeCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	if strings.TrimSpace(req.Title) == "" {
		return response.Fail(c, apperr.Validation(msgTitleRequired))
	}
	s := &entities.Scheme{Title: req.Title, Description: req.Description}
	if err := h.repo.Create(s); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, echo.Map{"scheme_id": s.ID})
}

func (h *SchemeCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	return response.OK(c, nil)
}
