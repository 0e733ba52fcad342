package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"near_account_lookup/internal/core/domain"
)

// FileNetworkSource reads the network setting from the config file and environment
// every time it is asked, so edits take effect on the next lookup without a restart.
type FileNetworkSource struct {
	path     string
	fallback domain.Network
}

// NewFileNetworkSource creates a source backed by the YAML file at path.
// fallback is used when neither the file nor the environment name a network.
func NewFileNetworkSource(path string, fallback domain.Network) *FileNetworkSource {
	if !fallback.IsValid() {
		fallback = DefaultNetwork
	}
	return &FileNetworkSource{path: path, fallback: fallback}
}

// Network returns the currently configured network.
func (s *FileNetworkSource) Network(_ context.Context) (domain.Network, error) {
	name := string(s.fallback)

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case err == nil:
			var doc struct {
				Near struct {
					Network string `yaml:"network"`
				} `yaml:"near"`
			}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return "", fmt.Errorf("failed to parse config file '%s': %w", s.path, err)
			}
			if doc.Near.Network != "" {
				name = doc.Near.Network
			}
		case os.IsNotExist(err):
		default:
			return "", fmt.Errorf("failed to read config file '%s': %w", s.path, err)
		}
	}

	if v := os.Getenv(EnvNetwork); v != "" {
		name = v
	}

	return domain.ParseNetwork(name)
}

// StaticNetworkSource always returns the same network. It backs explicit command-line selection.
type StaticNetworkSource domain.Network

// Network returns the fixed network.
func (s StaticNetworkSource) Network(_ context.Context) (domain.Network, error) {
	return domain.ParseNetwork(string(s))
}
