// Package app assembles repositories, services and controllers into the
// HTTP server. cmd/server and the end-to-end tests share it.
package app

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/config"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/session"
	"github.com/jaybhuva31/Paaksathi-AI/router"

	// Auth
	authCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/auth/controllerImp"
	authRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/auth/repositoryImp"
	authSvcImp "github.com/jaybhuva31/Paaksathi-AI/pkg/auth/serviceImp"

	// Visits + admin analytics
	adminCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/admin/controllerImp"
	adminRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/admin/repositoryImp"
	adminSvcImp "github.com/jaybhuva31/Paaksathi-AI/pkg/admin/serviceImp"
	visitCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/controllerImp"
	visitRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/repositoryImp"
	visitSvcImp "github.com/jaybhuva31/Paaksathi-AI/pkg/visit/serviceImp"

	// Scan
	scanCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/scan/controllerImp"
	scanRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/scan/repositoryImp"
	scanSvcImp "github.com/jaybhuva31/Paaksathi-AI/pkg/scan/serviceImp"

	// Content
	cropCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/crop/controllerImp"
	cropRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/crop/repositoryImp"
	diseaseCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/disease/controllerImp"
	diseaseRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/disease/repositoryImp"
	schemeCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/scheme/controllerImp"
	schemeRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/scheme/repositoryImp"

	// Export
	exportCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/export/controllerImp"
	exportRepoImp "github.com/jaybhuva31/Paaksathi-AI/pkg/export/repositoryImp"
	exportService "github.com/jaybhuva31/Paaksathi-AI/pkg/export/service"
	exportSvcImp "github.com/jaybhuva31/Paaksathi-AI/pkg/export/serviceImp"

	// Pages, weather, health
	healthCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/health/controllerImp"
	pageCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/page/controllerImp"
	weatherCtrlImp "github.com/jaybhuva31/Paaksathi-AI/pkg/weather/controllerImp"
)

// NewExportService is shared by the HTTP handler and the CLI command.
func NewExportService(cfg config.AppConfig, db *gorm.DB, logger *zap.Logger) exportService.ExportService {
	loc, err := exportSvcImp.LoadZone(cfg.ExportTZ)
	if err != nil {
		logger.Warn("export zone, using +05:30", zap.Error(err))
	}
	return exportSvcImp.NewExportService(exportRepoImp.New(db), loc)
}

// New wires every feature onto a fresh echo instance.
func New(cfg config.AppConfig, db *gorm.DB, detector ai.Detector, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	// Auth
	authSvc := authSvcImp.NewAuthService(authRepoImp.NewUserRepository(db), authRepoImp.NewAdminRepository(db))
	authCtrl := authCtrlImp.NewAuthController(authSvc, sessions)

	// Visits + admin
	vRepo := visitRepoImp.New(db)
	vSvc := visitSvcImp.NewVisitService(vRepo)
	vCtrl := visitCtrlImp.NewVisitController(vSvc)
	aSvc := adminSvcImp.NewAdminService(adminRepoImp.New(db), vRepo)
	aCtrl := adminCtrlImp.NewAdminController(aSvc)

	// Scan pipeline
	sSvc := scanSvcImp.NewScanService(scanRepoImp.New(db), detector, scanSvcImp.Options{
		UploadDir: cfg.UploadDir,
		Timeout:   cfg.DetectTimeout,
	}, logger.Named("scan"))
	sCtrl := scanCtrlImp.NewScanController(sSvc)

	// Content
	cCtrl := cropCtrlImp.New(cropRepoImp.New(db))
	dCtrl := diseaseCtrlImp.New(diseaseRepoImp.New(db))
	shCtrl := schemeCtrlImp.New(schemeRepoImp.New(db))

	xCtrl := exportCtrlImp.NewExportController(NewExportService(cfg, db, logger))

	pCtrl := pageCtrlImp.New(cfg.StaticDir, sSvc, logger.Named("page"))
	wCtrl := weatherCtrlImp.NewWeatherController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, detector)

	return router.New(
		e,
		router.Options{StaticDir: cfg.StaticDir, MaxUploadMB: cfg.MaxUploadMB},
		logger.Named("http"),
		sessions,
		vSvc,
		pCtrl,
		authCtrl,
		vCtrl,
		sCtrl,
		aCtrl,
		cCtrl, dCtrl, shCtrl,
		xCtrl,
		wCtrl,
		hCtrl,
	)
}
