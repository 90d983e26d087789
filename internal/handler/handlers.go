package handler

import (
	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/handler/http"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, http.SettingsFromConfig(cfg), logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
