package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string
	DBPath      string
	StaticDir   string
	UploadDir   string
	MaxUploadMB int

	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool

	AdminUsername string
	AdminPassword string

	// Detector is gemini|openai|mock; empty picks from the configured keys.
	Detector      string
	GeminiAPIKey  string
	GeminiModel   string
	LLMEndpoint   string
	LLMAPIKey     string
	LLMModel      string
	DetectTimeout time.Duration

	ExportTZ string

	LogLevel  string
	LogFormat string
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_PATH", "paaksathi.db")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("MAX_UPLOAD_MB", 16)
	v.SetDefault("SESSION_SECRET", "paaksathi-dev-secret-change-me")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("DETECTOR", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("LLM_ENDPOINT", "")
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("DETECT_TIMEOUT", "60s")
	v.SetDefault("EXPORT_TZ", "Asia/Kolkata")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return FromEnv()
}

// FromEnv resolves the config from the process environment only.
func FromEnv() AppConfig {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := AppConfig{
		Port:          v.GetString("PORT"),
		DBPath:        v.GetString("DB_PATH"),
		StaticDir:     v.GetString("STATIC_DIR"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		MaxUploadMB:   v.GetInt("MAX_UPLOAD_MB"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		SecureCookies: v.GetBool("SECURE_COOKIES"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		Detector:      strings.ToLower(strings.TrimSpace(v.GetString("DETECTOR"))),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		LLMEndpoint:   v.GetString("LLM_ENDPOINT"),
		LLMAPIKey:     v.GetString("LLM_API_KEY"),
		LLMModel:      v.GetString("LLM_MODEL"),
		DetectTimeout: v.GetDuration("DETECT_TIMEOUT"),
		ExportTZ:      v.GetString("EXPORT_TZ"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 16
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.DetectTimeout <= 0 {
		cfg.DetectTimeout = 60 * time.Second
	}
	if cfg.Detector == "" {
		switch {
		case cfg.GeminiAPIKey != "":
			cfg.Detector = "gemini"
		case cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "":
			cfg.Detector = "openai"
		default:
			cfg.Detector = "mock"
		}
	}
	return cfg
}

// Redacted hides secrets for logging.
func (c AppConfig) Redacted() AppConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.SessionSecret = mask(c.SessionSecret)
	c.AdminPassword = mask(c.AdminPassword)
	c.GeminiAPIKey = mask(c.GeminiAPIKey)
	c.LLMAPIKey = mask(c.LLMAPIKey)
	return c
}
