package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/auth/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/auth/service"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/middleware"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/session"
)

const (
	msgSignupOK = "રજિસ્ટ્રેશન સફળ!"
	msgLoginOK  = "લોગિન સફળ!"
	msgAdminOK  = "એડમિન લોગિન સફળ!"
	msgLogoutOK = "લોગઆઉટ સફળ!"
)

type authCtrl struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewAuthController(svc service.AuthService, sessions *session.Manager) controller.AuthController {
	return &authCtrl{svc: svc, sessions: sessions}
}

type signupReq struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type adminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	u, err := h.svc.Signup(service.SignupInput{Name: req.Name, Mobile: req.Mobile, Email: req.Email, Password: req.Password})
	if err != nil {
		return response.Fail(c, err)
	}
	ck, _, err := h.sessions.IssueUser(session.UserIdentity{ID: u.ID, Name: u.Name, Mobile: u.Mobile, Email: u.Email})
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	c.SetCookie(ck)
	return response.OK(c, echo.Map{"message": msgSignupOK})
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	u, err := h.svc.Login(req.Mobile, req.Password)
	if err != nil {
		return response.Fail(c, err)
	}
	ck, _, err := h.sessions.IssueUser(session.UserIdentity{ID: u.ID, Name: u.Name, Mobile: u.Mobile, Email: u.Email})
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	c.SetCookie(ck)
	return response.OK(c, echo.Map{"message": msgLoginOK})
}

// Logout clears the user scope only; an admin session on the same browser survives.
func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear(session.ScopeUser))
	return response.OK(c, echo.Map{"message": msgLogoutOK})
}

func (h *authCtrl) Profile(c echo.Context) error {
	id := middleware.IdentityOf(c)
	if id.User == nil {
		return response.Fail(c, apperr.NotLoggedIn())
	}
	u, scans, err := h.svc.Profile(id.User.ID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, echo.Map{
		"user": echo.Map{
			"id":     u.ID,
			"name":   u.Name,
			"mobile": u.Mobile,
			"email":  u.Email,
		},
		"user_scans": scans,
	})
}

func (h *authCtrl) AdminLogin(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, apperr.Validation(apperr.MsgInvalidRequest))
	}
	a, err := h.svc.AdminLogin(req.Username, req.Password)
	if err != nil {
		return response.Fail(c, err)
	}
	ck, _, err := h.sessions.IssueAdmin(session.AdminIdentity{ID: a.ID, Username: a.Username})
	if err != nil {
		return response.Fail(c, apperr.Internal(err))
	}
	c.SetCookie(ck)
	return response.OK(c, echo.Map{"message": msgAdminOK})
}

func (h *authCtrl) AdminLogout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear(session.ScopeAdmin))
	return response.OK(c, echo.Map{"message": msgLogoutOK})
}
