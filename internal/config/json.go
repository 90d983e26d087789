package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
// Durations accept both strings ("30s") and integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey          string   `json:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer"`
		RegisterTokenDuration Duration `json:"register_token_duration"`
		LoginTokenDuration    Duration `json:"login_token_duration"`
		CookieMaxAge          Duration `json:"cookie_max_age"`
		CookieInsecure        bool     `json:"cookie_insecure"`
		LogLevel              string   `json:"log_level"`
		Version               string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Media struct {
			Endpoint       string `json:"endpoint"`
			Region         string `json:"region"`
			Bucket         string `json:"bucket"`
			AccessKey      string `json:"access_key"`
			SecretKey      string `json:"secret_key"`
			PublicBaseURL  string `json:"public_base_url"`
			Folder         string `json:"folder"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
			UsePathStyle   bool   `json:"use_path_style"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		MediaCleanupInterval    Duration `json:"media_cleanup_interval"`
		MediaCleanupMaxAttempts int      `json:"media_cleanup_max_attempts"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	media := jsonCfg.Storage.Media
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenIssuer:           jsonCfg.App.TokenIssuer,
			RegisterTokenDuration: time.Duration(jsonCfg.App.RegisterTokenDuration),
			LoginTokenDuration:    time.Duration(jsonCfg.App.LoginTokenDuration),
			CookieMaxAge:          time.Duration(jsonCfg.App.CookieMaxAge),
			CookieInsecure:        jsonCfg.App.CookieInsecure,
			LogLevel:              jsonCfg.App.LogLevel,
			Version:               jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Media: Media{
				Endpoint:       media.Endpoint,
				Region:         media.Region,
				Bucket:         media.Bucket,
				AccessKey:      media.AccessKey,
				SecretKey:      media.SecretKey,
				PublicBaseURL:  media.PublicBaseURL,
				Folder:         media.Folder,
				MaxUploadBytes: media.MaxUploadBytes,
				UsePathStyle:   media.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			MediaCleanupInterval:    time.Duration(jsonCfg.Workers.MediaCleanupInterval),
			MediaCleanupMaxAttempts: jsonCfg.Workers.MediaCleanupMaxAttempts,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
