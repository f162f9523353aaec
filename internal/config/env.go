// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// readDotEnv returns the variables declared in the .env file at path.
// A missing file yields an empty set.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	return vars, nil
}

// parseEnv fills cfg from the process environment layered over fallback.
// Process variables win; fallback usually holds .env values, which never
// leak into os.Environ.
func parseEnv(cfg any, fallback map[string]string) error {
	environment := make(map[string]string, len(fallback))
	maps.Copy(environment, fallback)
	maps.Copy(environment, env.ToMap(os.Environ()))

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
