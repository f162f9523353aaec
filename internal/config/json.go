package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// fileConfig is the layout of the optional JSON configuration file.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
type fileConfig struct {
	Port    string      `json:"port"`
	App     fileApp     `json:"app"`
	Storage fileStorage `json:"storage"`
	Server  fileServer  `json:"server"`
}

type fileApp struct {
	TokenSignKey     string   `json:"token_sign_key"`
	TokenIssuer      string   `json:"token_issuer"`
	TokenDuration    Duration `json:"token_duration"`
	PasswordHashCost int      `json:"password_hash_cost"`
	LogLevel         string   `json:"log_level"`
	Version          string   `json:"version"`
}

type fileStorage struct {
	DB struct {
		DSN    string `json:"dsn"`
		Driver string `json:"driver"`
	} `json:"db"`
}

type fileServer struct {
	HTTPAddress        string   `json:"http_address"`
	RequestTimeout     Duration `json:"request_timeout"`
	ShutdownTimeout    Duration `json:"shutdown_timeout"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		Port: f.Port,
		App: App{
			TokenSignKey:     f.App.TokenSignKey,
			TokenIssuer:      f.App.TokenIssuer,
			TokenDuration:    time.Duration(f.App.TokenDuration),
			PasswordHashCost: f.App.PasswordHashCost,
			LogLevel:         f.App.LogLevel,
			Version:          f.App.Version,
		},
		Storage: Storage{DB: DB{DSN: f.Storage.DB.DSN, Driver: f.Storage.DB.Driver}},
		Server: Server{
			HTTPAddress:        f.Server.HTTPAddress,
			RequestTimeout:     time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(f.Server.ShutdownTimeout),
			CORSAllowedOrigins: f.Server.CORSAllowedOrigins,
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var fc fileConfig
	if err = decoder.Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs from %s: %w", path, err)
	}

	return fc.structured(), nil
}

// Duration reads a JSON duration either as a Go duration string ("90m")
// or as a whole number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var seconds int64
	if err := json.Unmarshal(b, &seconds); err != nil {
		return errors.New("duration must be a string like \"30s\" or a number of seconds")
	}

	*d = Duration(time.Duration(seconds) * time.Second)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
