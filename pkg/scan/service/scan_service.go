package service

import (
	"context"
	"io"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
)

const DefaultCropType = "cotton"

type Upload struct {
	Filename string
	Content  io.Reader
	CropType string
	UserID   *uint
}

type Result struct {
	Diagnosis *ai.Diagnosis
	ImagePath string
	Scan      *entities.Scan
}

type ScanService interface {
	// Process stores the image, runs detection and appends one Scan row.
	Process(ctx context.Context, in Upload) (*Result, error)
}
