package service

import (
	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cleaner MediaCleaner, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ProfileService: NewProfileService(storages.UserRepository, storages.MediaStorage, cleaner, cfg.Storage.Media, logger),
		AppInfoService: appInfoService,
	}, nil
}
