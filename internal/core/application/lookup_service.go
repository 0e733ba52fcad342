// Package application contains the core application service logic for NEAR account lookups.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/core/domain/client"
	"near_account_lookup/internal/logger"
	"near_account_lookup/pkg/nearlookup"
)

// LookupServiceImpl implements the nearlookup.Lookup interface and contains the core application logic.
type LookupServiceImpl struct {
	stateClient    client.AccountStateClient
	activityClient client.ActivityClient
	networks       client.NetworkSource
	endpoints      domain.EndpointTable
	logger         logger.AppLogger

	timeout       time.Duration
	reportOptions domain.ReportOptions
	scanner       domain.Scanner
}

// Compile-time check to ensure LookupServiceImpl implements nearlookup.Lookup
var _ nearlookup.Lookup = (*LookupServiceImpl)(nil)

// Config holds configuration needed by the LookupService.
type Config struct {
	// Timeout bounds one lookup including both upstream calls. Zero means no extra deadline.
	Timeout time.Duration
	// ReportOptions controls how activity times are rendered.
	ReportOptions domain.ReportOptions
	// IncludeBareNames makes Links and Scan also report identifiers without a dot.
	IncludeBareNames bool
}

// NewLookupService creates a new instance of LookupServiceImpl.
func NewLookupService(
	stateClient client.AccountStateClient,
	activityClient client.ActivityClient,
	networks client.NetworkSource,
	endpoints domain.EndpointTable,
	appLogger logger.AppLogger,
	cfg Config,
) (*LookupServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewLookupService: appLogger is nil")
	}
	if stateClient == nil {
		appLogger.Error("NewLookupService: stateClient is nil")
		return nil, errors.New("NewLookupService: stateClient is nil")
	}
	if activityClient == nil {
		appLogger.Error("NewLookupService: activityClient is nil")
		return nil, errors.New("NewLookupService: activityClient is nil")
	}
	if networks == nil {
		appLogger.Error("NewLookupService: networks is nil")
		return nil, errors.New("NewLookupService: networks is nil")
	}
	if endpoints == nil {
		endpoints = domain.DefaultEndpointTable()
	}

	return &LookupServiceImpl{
		stateClient:    stateClient,
		activityClient: activityClient,
		networks:       networks,
		endpoints:      endpoints,
		logger:         appLogger,
		timeout:        cfg.Timeout,
		reportOptions:  cfg.ReportOptions,
		scanner:        domain.Scanner{IncludeBareNames: cfg.IncludeBareNames},
	}, nil
}

// Lookup validates the account id, resolves the current network and builds a report.
func (s *LookupServiceImpl) Lookup(ctx context.Context, accountIDString string) (*nearlookup.Report, error) {
	accountID, err := domain.NewAccountID(accountIDString)
	if err != nil {
		return nil, fmt.Errorf("account id validation failed: %w", err)
	}

	network, err := s.networks.Network(ctx)
	if err != nil {
		s.logger.Error("Failed to resolve network", "error", err)
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	report, err := s.lookup(ctx, network, accountID)
	if err != nil {
		return nil, err
	}
	apiReport := mapDomainToAPIReport(report)
	return &apiReport, nil
}

// lookup fetches account state and recent activity concurrently and assembles the report.
// A state failure aborts the lookup; an activity failure leaves the activity list empty.
func (s *LookupServiceImpl) lookup(
	ctx context.Context,
	network domain.Network,
	accountID domain.AccountID,
) (domain.Report, error) {
	lookupLogger := s.logger.With("accountId", accountID.String(), "network", network.String())

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		state    domain.AccountState
		activity []domain.ActivityRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.stateClient.ViewAccount(gctx, network, accountID)
		if err != nil {
			return err
		}
		state = st
		return nil
	})
	g.Go(func() error {
		records, err := s.activityClient.RecentActivity(gctx, network, accountID)
		if err != nil {
			lookupLogger.Warn("Recent activity unavailable", "error", err)
			return nil
		}
		activity = records
		return nil
	})

	if err := g.Wait(); err != nil {
		lookupLogger.Error("Failed to fetch account state", "error", err)
		return domain.Report{}, fmt.Errorf("failed to fetch account state: %w", err)
	}

	report, err := domain.BuildReport(accountID, network, state, activity, s.endpoints, s.reportOptions)
	if err != nil {
		lookupLogger.Error("Failed to assemble report", "error", err)
		return domain.Report{}, err
	}

	lookupLogger.Debug("Lookup completed", "activityCount", len(activity))
	return report, nil
}

// Hover looks up the word under offset. It fails closed: invalid words and upstream
// failures both produce ok == false.
func (s *LookupServiceImpl) Hover(ctx context.Context, text string, offset int) (*nearlookup.Report, bool) {
	word, _, _, ok := domain.WordAt(text, offset)
	if !ok || !domain.IsValidAccountID(word) {
		return nil, false
	}

	report, err := s.Lookup(ctx, word)
	if err != nil {
		s.logger.Warn("Hover lookup failed", "accountId", word, "error", err)
		return nil, false
	}
	return report, true
}

// Links lists every account identifier in text with its explorer URL on the current network.
func (s *LookupServiceImpl) Links(ctx context.Context, text string) ([]nearlookup.Link, error) {
	network, err := s.networks.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	links := make([]nearlookup.Link, 0)
	for span := range s.scanner.Spans(text) {
		links = append(links, s.mapSpanToAPILink(text, span, network))
	}
	return links, nil
}

// Network returns the network lookups currently run against.
func (s *LookupServiceImpl) Network(ctx context.Context) (nearlookup.NetworkInfo, error) {
	network, err := s.networks.Network(ctx)
	if err != nil {
		return nearlookup.NetworkInfo{}, fmt.Errorf("failed to resolve network: %w", err)
	}
	return mapNetworkToAPI(network, s.endpoints.Lookup(network)), nil
}
