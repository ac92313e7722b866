package router

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/middleware"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/response"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/session"
)

type Options struct {
	StaticDir   string
	MaxUploadMB int
}

// pages served as-is from STATIC_DIR/pages; the bool marks user-only pages.
var pages = []struct {
	path, name string
	userOnly   bool
}{
	{"/", "index", false},
	{"/login", "login", false},
	{"/signup", "signup", false},
	{"/upload", "upload", false},
	{"/result", "result", false},
	{"/crops", "crops", false},
	{"/supported-crops", "supported-crops", false},
	{"/disease-library", "disease-library", false},
	{"/weather", "weather", false},
	{"/government-schemes", "government-schemes", false},
	{"/faq", "faq", false},
	{"/contact", "contact", false},
	{"/dashboard", "dashboard", true},
	{"/profile", "profile", true},
	{"/admin", "admin", false},
}

func New(
	e *echo.Echo,
	opts Options,
	logger *zap.Logger,
	sessions *session.Manager,
	visits middleware.VisitRecorder,
	pageCtrl interface {
		Serve(name string) echo.HandlerFunc
		UploadSubmit(echo.Context) error
	},
	authCtrl interface {
		Signup(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		Profile(echo.Context) error
		AdminLogin(echo.Context) error
		AdminLogout(echo.Context) error
	},
	visitCtrl interface {
		Track(echo.Context) error
		Stats(echo.Context) error
	},
	scanCtrl interface{ Upload(echo.Context) error },
	adminCtrl interface {
		Stats(echo.Context) error
		ScanRecords(echo.Context) error
	},
	cropCtrl, diseaseCtrl, schemeCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Delete(echo.Context) error
	},
	exportCtrl interface{ Users(echo.Context) error },
	weatherCtrl interface{ Current(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HTTPErrorHandler = response.ErrorHandler(logger)
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(logger))
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dM", opts.MaxUploadMB)))
	e.Use(middleware.Sessions(sessions))

	e.GET("/health", healthCtrl.Health)
	e.Static("/static", opts.StaticDir)

	// Pages: every view is logged as a Visit.
	track := middleware.TrackVisit(visits, logger)
	toLogin := middleware.RedirectAnonymous("/login")
	for _, p := range pages {
		if p.userOnly {
			e.GET(p.path, pageCtrl.Serve(p.name), track, toLogin)
			continue
		}
		e.GET(p.path, pageCtrl.Serve(p.name), track)
	}
	e.POST("/upload", pageCtrl.UploadSubmit, track)

	api := e.Group("/api")
	requireAdmin := middleware.RequireAdmin()

	api.POST("/track-visit", visitCtrl.Track)
	api.GET("/stats", visitCtrl.Stats)

	api.POST("/user/signup", authCtrl.Signup)
	api.POST("/user/login", authCtrl.Login)
	api.POST("/user/logout", authCtrl.Logout)
	api.GET("/user/profile", authCtrl.Profile, middleware.RequireUser())

	api.POST("/scan/upload", scanCtrl.Upload)
	api.GET("/weather", weatherCtrl.Current)

	// Admin
	api.POST("/admin/login", authCtrl.AdminLogin)
	api.POST("/admin/logout", authCtrl.AdminLogout)
	api.GET("/admin/stats", adminCtrl.Stats, requireAdmin)
	api.GET("/admin/scan-records", adminCtrl.ScanRecords, requireAdmin)
	api.GET("/admin/export-users", exportCtrl.Users, requireAdmin)

	// Content: public reads, admin writes
	api.GET("/crops", cropCtrl.List)
	api.POST("/crops", cropCtrl.Create, requireAdmin)
	api.DELETE("/crops/:id", cropCtrl.Delete, requireAdmin)

	api.GET("/diseases", diseaseCtrl.List)
	api.POST("/diseases", diseaseCtrl.Create, requireAdmin)
	api.DELETE("/diseases/:id", diseaseCtrl.Delete, requireAdmin)

	api.GET("/schemes", schemeCtrl.List)
	api.POST("/schemes", schemeCtrl.Create, requireAdmin)
	api.DELETE("/schemes/:id", schemeCtrl.Delete, requireAdmin)

	return e
}
