package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"near_account_lookup/internal/core/domain"
)

// Default config values.
const (
	DefaultConfigFilePath                 = "config.yml"
	DefaultServerPort                     = ":8080"
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
	DefaultNetwork                        = domain.NetworkMainnet
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultNearClientTimeoutSeconds       = 20
	DefaultLookupTimeoutSeconds           = 10
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	Near   NearConfig   `yaml:"near"`
	Lookup LookupConfig `yaml:"lookup"`
}

// ServerConfig holds all configuration related to the HTTP server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// EndpointConfig overrides the public endpoints of one network. Empty fields keep the defaults.
type EndpointConfig struct {
	RPCURL      string `yaml:"rpc_url"`
	ExplorerURL string `yaml:"explorer_url"`
	ActivityURL string `yaml:"activity_url"`
}

// NearConfig holds all configuration related to the NEAR RPC node and activity indexer.
type NearConfig struct {
	Network              string                    `yaml:"network"`
	Endpoints            map[string]EndpointConfig `yaml:"endpoints"`
	ClientTimeoutSeconds int                       `yaml:"client_timeout_seconds"`
	ActivityAPIKey       string                    `yaml:"activity_api_key"`
}

// LookupConfig holds configuration for the lookup service and report rendering.
type LookupConfig struct {
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	TimeLayout       string `yaml:"time_layout"`
	TimeZone         string `yaml:"time_zone"`
	IncludeBareNames bool   `yaml:"include_bare_names"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Near: NearConfig{
			Network:              string(DefaultNetwork),
			ClientTimeoutSeconds: DefaultNearClientTimeoutSeconds,
		},
		Lookup: LookupConfig{
			TimeoutSeconds: DefaultLookupTimeoutSeconds,
			TimeLayout:     domain.DefaultTimeLayout,
		},
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || (strings.HasPrefix(c.Server.Port, ":") && len(c.Server.Port) == 1) {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if _, err := domain.ParseNetwork(c.Near.Network); err != nil {
		return fmt.Errorf("invalid network (config key: near.network): %w", err)
	}
	for name := range c.Near.Endpoints {
		if _, err := domain.ParseNetwork(name); err != nil {
			return fmt.Errorf("invalid endpoints entry (config key: near.endpoints.%s): %w", name, err)
		}
	}
	if c.Near.ClientTimeoutSeconds <= 0 {
		return errors.New("near client timeout seconds (config key: near.client_timeout_seconds) must be greater than 0")
	}

	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("lookup timeout seconds (config key: lookup.timeout_seconds) must be greater than 0")
	}
	if _, err := c.Lookup.Location(); err != nil {
		return fmt.Errorf("invalid time zone (config key: lookup.time_zone): %w", err)
	}

	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.New("server read timeout seconds (config key: server.read_timeout_seconds) cannot be negative")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server write timeout seconds (config key: server.write_timeout_seconds) cannot be negative")
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server idle timeout seconds (config key: server.idle_timeout_seconds) cannot be negative")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New(
			"server read header timeout seconds (config key: server.read_header_timeout_seconds) cannot be negative",
		)
	}

	return nil
}

// EndpointTable converts the configured overrides into a domain.EndpointTable.
// Entries with an unknown network name are skipped; Validate reports them.
func (n NearConfig) EndpointTable() domain.EndpointTable {
	table := domain.DefaultEndpointTable()
	for name, ep := range n.Endpoints {
		network, err := domain.ParseNetwork(name)
		if err != nil {
			continue
		}
		table[network] = domain.Endpoints{
			RPCURL:      ep.RPCURL,
			ExplorerURL: ep.ExplorerURL,
			ActivityURL: ep.ActivityURL,
		}
	}
	return table
}

// ClientTimeout returns the HTTP client timeout.
func (n NearConfig) ClientTimeout() time.Duration {
	return time.Duration(n.ClientTimeoutSeconds) * time.Second
}

// Timeout returns the deadline of one lookup.
func (l LookupConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// Location resolves TimeZone. An empty value means the host's local zone.
func (l LookupConfig) Location() (*time.Location, error) {
	if l.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(l.TimeZone)
}
