package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/health/controller"
)

var appStart = time.Now()

type HealthCtrl struct {
	db       *gorm.DB
	detector ai.Detector
}

func NewHealthCtrl(db *gorm.DB, detector ai.Detector) controller.HealthController {
	return &HealthCtrl{db: db, detector: detector}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	detector := ""
	if h.detector != nil {
		detector = h.detector.Name()
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
		},
		"detector": detector,
		"time":     time.Now().Format(time.RFC3339),
	})
}
