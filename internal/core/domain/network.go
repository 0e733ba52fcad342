package domain

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Network selects which NEAR network a lookup runs against.
type Network string

// Supported networks.
const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// Networks lists the supported networks, primary first.
func Networks() []Network {
	return []Network{NetworkMainnet, NetworkTestnet}
}

// maxNetworkTypoDistance bounds how far a misspelled network name may be from a suggestion.
const maxNetworkTypoDistance = 3

// ParseNetwork parses a network name. Matching ignores case and surrounding whitespace.
func ParseNetwork(s string) (Network, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, n := range Networks() {
		if name == string(n) {
			return n, nil
		}
	}
	if suggestion := SuggestNetwork(name); suggestion != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownNetwork, s, suggestion)
	}
	return "", fmt.Errorf("%w: %q, must be one of: mainnet, testnet", ErrUnknownNetwork, s)
}

// SuggestNetwork returns the supported network closest to name, or "" if none is close.
func SuggestNetwork(name string) Network {
	best := Network("")
	bestDist := maxNetworkTypoDistance + 1
	for _, n := range Networks() {
		if d := levenshtein.ComputeDistance(name, string(n)); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// IsValid reports whether n is one of the supported networks.
func (n Network) IsValid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

func (n Network) String() string {
	return string(n)
}

// Endpoints are the base URLs a lookup talks to for one network.
type Endpoints struct {
	RPCURL      string `json:"rpc_url"`
	ExplorerURL string `json:"explorer_url"`
	ActivityURL string `json:"activity_url"`
}

// DefaultEndpoints returns the public endpoints for n.
func DefaultEndpoints(n Network) Endpoints {
	activity := "https://api.nearblocks.io"
	if n == NetworkTestnet {
		activity = "https://api-testnet.nearblocks.io"
	}
	return Endpoints{
		RPCURL:      fmt.Sprintf("https://rpc.%s.near.org", n),
		ExplorerURL: fmt.Sprintf("https://explorer.%s.near.org", n),
		ActivityURL: activity,
	}
}

// EndpointTable maps every network to its endpoints.
type EndpointTable map[Network]Endpoints

// DefaultEndpointTable returns the public endpoints of all supported networks.
func DefaultEndpointTable() EndpointTable {
	table := make(EndpointTable, len(Networks()))
	for _, n := range Networks() {
		table[n] = DefaultEndpoints(n)
	}
	return table
}

// Lookup returns the endpoints for n. Fields left empty in the table fall back to the defaults.
func (t EndpointTable) Lookup(n Network) Endpoints {
	def := DefaultEndpoints(n)
	e, ok := t[n]
	if !ok {
		return def
	}
	if e.RPCURL == "" {
		e.RPCURL = def.RPCURL
	}
	if e.ExplorerURL == "" {
		e.ExplorerURL = def.ExplorerURL
	}
	if e.ActivityURL == "" {
		e.ActivityURL = def.ActivityURL
	}
	return e
}

// ViewerURL returns the explorer page of id on n.
func (t EndpointTable) ViewerURL(n Network, id AccountID) string {
	return strings.TrimRight(t.Lookup(n).ExplorerURL, "/") + "/accounts/" + id.String()
}
