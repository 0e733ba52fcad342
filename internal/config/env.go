package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvConfigFile     = "NEAR_LOOKUP_CONFIG"
	EnvNetwork        = "NEAR_LOOKUP_NETWORK"
	EnvLogLevel       = "NEAR_LOOKUP_LOG_LEVEL"
	EnvLogFormat      = "NEAR_LOOKUP_LOG_FORMAT"
	EnvActivityAPIKey = "NEAR_LOOKUP_ACTIVITY_API_KEY" // #nosec G101 -- variable name, not a credential
	EnvNoColor        = "NO_COLOR"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvNetwork); v != "" {
		cfg.Near.Network = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logger.Level = LogLevel(strings.ToLower(v))
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logger.Format = LogFormat(strings.ToLower(v))
	}
	if v := os.Getenv(EnvActivityAPIKey); v != "" {
		cfg.Near.ActivityAPIKey = v
	}
}

// ColorDisabled reports whether NO_COLOR is set, whatever its value.
func ColorDisabled() bool {
	_, ok := os.LookupEnv(EnvNoColor)
	return ok
}

// ResolvePath picks the config file: an explicit path first, then NEAR_LOOKUP_CONFIG,
// then DefaultConfigFilePath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(EnvConfigFile); v != "" {
		return v
	}
	return DefaultConfigFilePath
}
