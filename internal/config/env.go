// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// GetString returns the raw value of the named environment variable, or def
// when the variable is unset or empty.
func GetString(key string, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	return value
}

// GetBool returns true only when the named environment variable is set to the
// literal token "true", compared case-insensitively. Any other value —
// including "1" and "yes" — yields false. An unset or empty variable yields
// def. This is deliberately not general boolean parsing.
func GetBool(key string, def bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return def
	}

	return value == "true"
}

// GetList splits the named environment variable on sep, trims whitespace from
// every element, and drops elements that are empty after trimming. Order is
// preserved and duplicates are allowed. An unset or empty variable yields def.
func GetList(key string, sep string, def []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parts := strings.Split(value, sep)
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}
