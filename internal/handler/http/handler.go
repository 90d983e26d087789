package http

import (
	"time"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/service"
)

// Settings carries the transport options read from configuration.
type Settings struct {
	RegisterTokenTTL time.Duration
	LoginTokenTTL    time.Duration
	CookieMaxAge     time.Duration
	CookieInsecure   bool
	MaxUploadBytes   int64
	RequestTimeout   time.Duration
}

// SettingsFromConfig extracts handler settings from the application config.
func SettingsFromConfig(cfg *config.StructuredConfig) Settings {
	return Settings{
		RegisterTokenTTL: cfg.App.RegisterTokenDuration,
		LoginTokenTTL:    cfg.App.LoginTokenDuration,
		CookieMaxAge:     cfg.App.CookieMaxAge,
		CookieInsecure:   cfg.App.CookieInsecure,
		MaxUploadBytes:   cfg.Storage.Media.MaxUploadBytes,
		RequestTimeout:   cfg.Server.RequestTimeout,
	}
}

func (s Settings) withDefaults() Settings {
	if s.RegisterTokenTTL <= 0 {
		s.RegisterTokenTTL = config.DefaultRegisterTokenDuration
	}
	if s.LoginTokenTTL <= 0 {
		s.LoginTokenTTL = config.DefaultLoginTokenDuration
	}
	if s.CookieMaxAge <= 0 {
		s.CookieMaxAge = config.DefaultCookieMaxAge
	}
	if s.MaxUploadBytes <= 0 {
		s.MaxUploadBytes = config.DefaultMaxUploadBytes
	}
	if s.RequestTimeout <= 0 {
		s.RequestTimeout = config.DefaultRequestTimeout
	}
	return s
}

type Handler struct {
	services *service.Services
	settings Settings
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings.withDefaults(),
		metrics:  newMetrics(),
		logger:   logger,
	}
}
