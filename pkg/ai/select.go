package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jaybhuva31/Paaksathi-AI/config"
)

// New builds the detector named by cfg.Detector.
func New(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) (Detector, error) {
	switch cfg.Detector {
	case SourceGemini:
		d, err := NewGemini(ctx, GeminiConfig{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
		if err != nil {
			return nil, err
		}
		logger.Info("detector", zap.String("source", SourceGemini), zap.String("model", cfg.GeminiModel))
		return d, nil
	case SourceOpenAI:
		if cfg.LLMEndpoint == "" {
			return nil, fmt.Errorf("openai detector: LLM_ENDPOINT is required")
		}
		logger.Info("detector", zap.String("source", SourceOpenAI), zap.String("model", cfg.LLMModel))
		return NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, nil), nil
	case SourceMock, "":
		logger.Info("detector", zap.String("source", SourceMock))
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown detector %q", cfg.Detector)
	}
}
