package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	repo "github.com/jaybhuva31/Paaksathi-AI/pkg/scan/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/scan/service"
)

const (
	MsgNoFileSelected = "કોઈ ફાઇલ પસંદ કરવામાં આવી નથી"
	MsgBadFileType    = "અમાન્ય ફાઇલ પ્રકાર. કૃપા કરીને PNG, JPG, JPEG અથવા GIF ફાઇલ અપલોડ કરો"

	stampLayout = "20060102_150405"
)

type Options struct {
	UploadDir string
	// Timeout bounds one detection call; zero means no extra deadline.
	Timeout time.Duration
}

type scanSvc struct {
	r        repo.ScanRepository
	detector ai.Detector
	opts     Options
	logger   *zap.Logger
	now      func() time.Time
}

func NewScanService(r repo.ScanRepository, detector ai.Detector, opts Options, logger *zap.Logger) service.ScanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &scanSvc{r: r, detector: detector, opts: opts, logger: logger, now: time.Now}
}

func (s *scanSvc) Process(ctx context.Context, in service.Upload) (*service.Result, error) {
	if in.Filename == "" {
		return nil, apperr.Validation(MsgNoFileSelected)
	}
	ext, mimeType, ok := imageExt(in.Filename)
	if !ok {
		return nil, apperr.Validation(MsgBadFileType)
	}
	cropType := strings.TrimSpace(in.CropType)
	if cropType == "" {
		cropType = service.DefaultCropType
	}

	data, err := io.ReadAll(in.Content)
	if err != nil {
		return nil, apperr.Validation(apperr.MsgInvalidRequest)
	}
	path, err := s.store(in.Filename, ext, data)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("store upload: %w", err))
	}

	dctx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	diag, err := s.detector.Diagnose(dctx, ai.Image{Data: data, MIMEType: mimeType}, cropType)
	if err != nil {
		s.logger.Warn("detection failed",
			zap.String("detector", s.detector.Name()),
			zap.String("image", path),
			zap.Error(err))
		return nil, apperr.UpstreamDetection(err)
	}

	row := &entities.Scan{
		UserID:      in.UserID,
		CropType:    cropType,
		DiseaseName: diag.DiseaseName,
		ImagePath:   path,
		Report:      diag.Report,
		Source:      diag.Source,
		ScanTime:    s.now().UTC(),
	}
	if err := s.r.Create(row); err != nil {
		return nil, apperr.Internal(fmt.Errorf("insert scan: %w", err))
	}
	s.logger.Info("scan recorded",
		zap.Uint("scan_id", row.ID),
		zap.String("crop", cropType),
		zap.String("source", diag.Source))
	return &service.Result{Diagnosis: diag, ImagePath: path, Scan: row}, nil
}

// store writes data under UploadDir and returns the slash-separated path
// that is recorded on the Scan row. An existing file is never overwritten.
func (s *scanSvc) store(original, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.opts.UploadDir, 0o755); err != nil {
		return "", err
	}
	stamp := s.now().Format(stampLayout)
	name := storedName(stamp, original, ext)
	for attempt := 0; ; attempt++ {
		full := filepath.Join(s.opts.UploadDir, name)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) && attempt < 3 {
			name = storedName(stamp+"_"+uuid.NewString()[:8], original, ext)
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return filepath.ToSlash(full), nil
	}
}
