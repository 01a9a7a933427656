package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	// Variables with bespoke parsing rules go through the typed getters:
	// API_KEYS is a trimmed list, and the booleans accept only "true".
	envCfg.Auth.APIKeys = GetList(EnvAPIKeys, ",", nil)
	envCfg.Storage.DB.DatabaseURL = GetString(EnvDatabaseURL, "")
	envCfg.Storage.DB.Echo = GetBool(EnvDatabaseEcho, false)
	envCfg.App.LogLevel = GetString(EnvLogLevel, "")
	envCfg.Telemetry.Enabled = GetBool(EnvOtelEnabled, false)
	envCfg.Telemetry.ServiceName = GetString(EnvOtelService, "")
	envCfg.Telemetry.Endpoint = GetString(EnvOtelEndpoint, "")

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// applyDefaults fills the fields that must never stay empty after merging.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ServiceName == "" {
		cfg.App.ServiceName = defaultServiceName
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.ServiceName
	}
}
