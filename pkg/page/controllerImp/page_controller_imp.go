package controllerImp

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/middleware"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/page/controller"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scan/service"
)

const msgNoImage = "કોઈ ફાઇલ પ્રદાન કરવામાં આવી નથી"

//go:embed templates/result.html
var templatesFS embed.FS

var resultTmpl = template.Must(template.ParseFS(templatesFS, "templates/result.html"))

type resultView struct {
	CropType  string
	ImageURL  string
	Diagnosis *ai.Diagnosis
	Error     string
}

type PageCtrl struct {
	staticDir string
	pagesDir  string
	scans     service.ScanService
	logger    *zap.Logger
}

func New(staticDir string, scans service.ScanService, logger *zap.Logger) controller.PageController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageCtrl{
		staticDir: staticDir,
		pagesDir:  filepath.Join(staticDir, "pages"),
		scans:     scans,
		logger:    logger,
	}
}

func (h *PageCtrl) Serve(name string) echo.HandlerFunc {
	path := filepath.Join(h.pagesDir, name+".html")
	return func(c echo.Context) error {
		return c.File(path)
	}
}

// UploadSubmit is the form flow behind POST /upload. It runs the same scan
// pipeline as the JSON API and renders the outcome as HTML.
func (h *PageCtrl) UploadSubmit(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			h.logger.Debug("upload form", zap.Error(err))
		}
		return h.render(c, http.StatusBadRequest, resultView{Error: msgNoImage})
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	cropType := c.FormValue("crop_type")
	res, err := h.scans.Process(c.Request().Context(), service.Upload{
		Filename: fh.Filename,
		Content:  f,
		CropType: cropType,
		UserID:   middleware.IdentityOf(c).UserID(),
	})
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			h.logger.Error("upload form scan", zap.Error(err))
		}
		return h.render(c, apperr.Status(err), resultView{Error: apperr.Message(err)})
	}
	return h.render(c, http.StatusOK, resultView{
		CropType:  res.Scan.CropType,
		ImageURL:  h.publicURL(res.ImagePath),
		Diagnosis: res.Diagnosis,
	})
}

// publicURL maps a stored image path to its URL under /static. Files kept
// outside the static dir have no URL.
func (h *PageCtrl) publicURL(stored string) string {
	if stored == "" {
		return ""
	}
	root, err := filepath.Abs(h.staticDir)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(filepath.FromSlash(stored))
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		h.logger.Warn("upload outside static dir", zap.String("path", stored))
		return ""
	}
	return "/static/" + filepath.ToSlash(rel)
}

func (h *PageCtrl) render(c echo.Context, status int, v resultView) error {
	var buf bytes.Buffer
	if err := resultTmpl.Execute(&buf, v); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
