// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from a YAML file, applies environment overrides and validates it.
// A missing file is only tolerated when filePath is empty or the default path.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	switch {
	case err == nil:
		if err := mergeYAML(cfg, fileBytes); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
		}
	case os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFilePath):
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	ApplyEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// mergeYAML overlays the sections present in data onto cfg. Zero values in the file keep the defaults.
func mergeYAML(cfg *Config, data []byte) error {
	type partialConfig struct {
		Server *ServerConfig `yaml:"server"`
		Logger *LoggerConfig `yaml:"logger"`
		Near   *NearConfig   `yaml:"near"`
		Lookup *LookupConfig `yaml:"lookup"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(data, &pCfg); err != nil {
		return err
	}

	if s := pCfg.Server; s != nil {
		if s.Port != "" {
			cfg.Server.Port = s.Port
		}
		if s.ReadTimeoutSeconds != 0 {
			cfg.Server.ReadTimeoutSeconds = s.ReadTimeoutSeconds
		}
		if s.WriteTimeoutSeconds != 0 {
			cfg.Server.WriteTimeoutSeconds = s.WriteTimeoutSeconds
		}
		if s.IdleTimeoutSeconds != 0 {
			cfg.Server.IdleTimeoutSeconds = s.IdleTimeoutSeconds
		}
		if s.ReadHeaderTimeoutSeconds != 0 {
			cfg.Server.ReadHeaderTimeoutSeconds = s.ReadHeaderTimeoutSeconds
		}
	}
	if l := pCfg.Logger; l != nil {
		if l.Level != "" {
			cfg.Logger.Level = l.Level
		}
		if l.Format != "" {
			cfg.Logger.Format = l.Format
		}
	}
	if n := pCfg.Near; n != nil {
		if n.Network != "" {
			cfg.Near.Network = n.Network
		}
		if n.Endpoints != nil {
			cfg.Near.Endpoints = n.Endpoints
		}
		if n.ClientTimeoutSeconds != 0 {
			cfg.Near.ClientTimeoutSeconds = n.ClientTimeoutSeconds
		}
		if n.ActivityAPIKey != "" {
			cfg.Near.ActivityAPIKey = n.ActivityAPIKey
		}
	}
	if l := pCfg.Lookup; l != nil {
		if l.TimeoutSeconds != 0 {
			cfg.Lookup.TimeoutSeconds = l.TimeoutSeconds
		}
		if l.TimeLayout != "" {
			cfg.Lookup.TimeLayout = l.TimeLayout
		}
		if l.TimeZone != "" {
			cfg.Lookup.TimeZone = l.TimeZone
		}
		cfg.Lookup.IncludeBareNames = l.IncludeBareNames
	}
	return nil
}
