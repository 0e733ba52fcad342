// Package app wires configuration, outbound adapters and the lookup service together for the drivers.
package app

import (
	"fmt"
	"net/http"

	"near_account_lookup/internal/adapters/activity"
	"near_account_lookup/internal/adapters/rpc"
	"near_account_lookup/internal/config"
	"near_account_lookup/internal/core/application"
	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/core/domain/client"
	"near_account_lookup/internal/logger"
)

// NewLookupService builds the RPC and activity adapters from cfg and returns a lookup service
// that asks networks for the network on every lookup. Both adapters share one HTTP client.
func NewLookupService(
	cfg *config.Config,
	networks client.NetworkSource,
	appLogger logger.AppLogger,
) (*application.LookupServiceImpl, error) {
	location, err := cfg.Lookup.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid time zone: %w", err)
	}

	endpoints := cfg.Near.EndpointTable()
	httpClient := &http.Client{Timeout: cfg.Near.ClientTimeout()}

	stateClient := rpc.NewNearRPCAdapter(endpoints, httpClient, appLogger.With("component", "rpc"))
	activityClient := activity.NewNearBlocksAdapter(endpoints, &activity.Options{
		HTTPClient: httpClient,
		APIKey:     cfg.Near.ActivityAPIKey,
		Logger:     appLogger.With("component", "activity"),
	})

	return application.NewLookupService(
		stateClient,
		activityClient,
		networks,
		endpoints,
		appLogger.With("component", "lookup"),
		application.Config{
			Timeout: cfg.Lookup.Timeout(),
			ReportOptions: domain.ReportOptions{
				Location:   location,
				TimeLayout: cfg.Lookup.TimeLayout,
			},
			IncludeBareNames: cfg.Lookup.IncludeBareNames,
		},
	)
}

// NetworkSource returns the source the drivers consult per lookup. An explicit override
// pins the network; otherwise the config file at path is re-read on every call.
func NetworkSource(path, override string, fallback domain.Network) (client.NetworkSource, error) {
	if override != "" {
		network, err := domain.ParseNetwork(override)
		if err != nil {
			return nil, err
		}
		return config.StaticNetworkSource(network), nil
	}
	return config.NewFileNetworkSource(path, fallback), nil
}
