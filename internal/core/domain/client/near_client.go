// Package client defines interfaces for external service clients: the NEAR RPC node and the activity indexer.
//
//go:generate mockery --name="AccountStateClient|ActivityClient|NetworkSource" --output=../../application/mocks/mock_client --outpkg=mock_client
package client

import (
	"context"

	"near_account_lookup/internal/core/domain"
)

// AccountStateClient defines the interface for querying account state from a NEAR RPC node.
type AccountStateClient interface {
	// ViewAccount fetches the finalized balance and storage usage of an account.
	// Failures are reported as *domain.RPCError.
	ViewAccount(ctx context.Context, network domain.Network, accountID domain.AccountID) (domain.AccountState, error)
}

// ActivityClient defines the interface for fetching recent transactions of an account from an indexer.
type ActivityClient interface {
	// RecentActivity fetches at most domain.MaxActivityRecords transactions, most recent first.
	// Failures are reported as *domain.ActivityFetchError.
	RecentActivity(ctx context.Context, network domain.Network, accountID domain.AccountID) ([]domain.ActivityRecord, error)
}

// NetworkSource supplies the network a lookup should run against. It is consulted on every lookup.
type NetworkSource interface {
	// Network returns the currently selected network.
	Network(ctx context.Context) (domain.Network, error)
}
