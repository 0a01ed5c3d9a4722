// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are accepted both as strings ("1h") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Env              string   `json:"env"`
		LogLevel         string   `json:"log_level"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		AllowAdminSignup *bool    `json:"allow_admin_signup"`
		BcryptCost       int      `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			Host           string   `json:"host"`
			Port           int      `json:"port"`
			User           string   `json:"user"`
			Password       string   `json:"password"`
			Name           string   `json:"name"`
			SSL            bool     `json:"ssl"`
			MaxConns       int      `json:"max_conns"`
			ConnectRetries int      `json:"connect_retries"`
			ConnectBackoff Duration `json:"connect_backoff"`
		} `json:"db,omitempty"`

		Files struct {
			UploadsDir    string `json:"uploads_dir"`
			FrontendDir   string `json:"frontend_dir"`
			MaxUploadSize int64  `json:"max_upload_size"`
			MaxBodySize   int64  `json:"max_body_size"`
			S3            S3     `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
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

	db := jsonCfg.Storage.DB
	files := jsonCfg.Storage.Files

	cfg := &StructuredConfig{
		App: App{
			Env:              jsonCfg.App.Env,
			LogLevel:         jsonCfg.App.LogLevel,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			AllowAdminSignup: jsonCfg.App.AllowAdminSignup,
			BcryptCost:       jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:            db.DSN,
				Host:           db.Host,
				Port:           db.Port,
				User:           db.User,
				Password:       db.Password,
				Name:           db.Name,
				SSL:            db.SSL,
				MaxConns:       db.MaxConns,
				ConnectRetries: db.ConnectRetries,
				ConnectBackoff: time.Duration(db.ConnectBackoff),
			},
			Files: Files{
				UploadsDir:    files.UploadsDir,
				FrontendDir:   files.FrontendDir,
				MaxUploadSize: files.MaxUploadSize,
				MaxBodySize:   files.MaxBodySize,
				S3:            files.S3,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
