// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to zero-valued fields.
const (
	DefaultTokenIssuer           = "socialix"
	DefaultRegisterTokenDuration = 24 * time.Hour
	DefaultLoginTokenDuration    = 7 * 24 * time.Hour
	DefaultCookieMaxAge          = 7 * 24 * time.Hour
	DefaultRequestTimeout        = 30 * time.Second
	DefaultMediaRegion           = "us-east-1"
	DefaultMediaFolder           = "SocialixWebApp/Profiles"
	DefaultMaxUploadBytes        = 10 << 20
	DefaultMediaCleanupInterval  = time.Minute
	DefaultMediaCleanupAttempts  = 5
	DefaultVersion               = "dev"
	DefaultLogLevel              = "info"
)

// applyDefaults fills zero-valued optional fields. Secrets, the DSN, and the
// media bucket have no defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.RegisterTokenDuration == 0 {
		cfg.App.RegisterTokenDuration = DefaultRegisterTokenDuration
	}
	if cfg.App.LoginTokenDuration == 0 {
		cfg.App.LoginTokenDuration = DefaultLoginTokenDuration
	}
	if cfg.App.CookieMaxAge == 0 {
		cfg.App.CookieMaxAge = DefaultCookieMaxAge
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Server.HTTPAddress == "" && cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.Media.Region == "" {
		cfg.Storage.Media.Region = DefaultMediaRegion
	}
	if cfg.Storage.Media.Folder == "" {
		cfg.Storage.Media.Folder = DefaultMediaFolder
	}
	if cfg.Storage.Media.MaxUploadBytes == 0 {
		cfg.Storage.Media.MaxUploadBytes = DefaultMaxUploadBytes
	}

	if cfg.Workers.MediaCleanupInterval == 0 {
		cfg.Workers.MediaCleanupInterval = DefaultMediaCleanupInterval
	}
	if cfg.Workers.MediaCleanupMaxAttempts == 0 {
		cfg.Workers.MediaCleanupMaxAttempts = DefaultMediaCleanupAttempts
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.RegisterTokenDuration < 0 || cfg.App.LoginTokenDuration < 0 || cfg.App.CookieMaxAge < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Media.Bucket == "" {
		return fmt.Errorf("%w: media bucket is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Media.MaxUploadBytes < 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.MediaCleanupInterval < 0 || cfg.Workers.MediaCleanupMaxAttempts < 0 {
		return fmt.Errorf("%w: cleanup settings must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
