package application

import (
	"context"
	"errors"
	"fmt"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/pkg/nearlookup"
)

// Scan looks up every distinct account identifier in text, one at a time, in order of first
// appearance. The network is resolved once for the whole document. A failed lookup is recorded
// on its result and scanning continues; cancellation stops the scan.
func (s *LookupServiceImpl) Scan(ctx context.Context, text string) ([]nearlookup.ScanResult, error) {
	network, err := s.networks.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	scanLogger := s.logger.With("method", "Scan", "network", network.String())

	results := make([]nearlookup.ScanResult, 0)
	index := make(map[string]int)
	for span := range s.scanner.Spans(text) {
		if i, seen := index[span.Text]; seen {
			results[i].Occurrences++
			continue
		}
		index[span.Text] = len(results)
		results = append(results, nearlookup.ScanResult{
			AccountID:   span.Text,
			Occurrences: 1,
			First:       s.mapSpanToAPILink(text, span, network),
		})
	}
	scanLogger.Info("Scanning document", "distinctAccounts", len(results))

	for i := range results {
		select {
		case <-ctx.Done():
			scanLogger.Warn("Scan context done during lookup loop", "processed", i, "error", ctx.Err())
			return results, ctx.Err()
		default:
		}

		if err := s.scanOne(ctx, network, &results[i]); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				if ctx.Err() != nil {
					scanLogger.Info("Context cancelled while looking up account", "accountId", results[i].AccountID)
					return results, ctx.Err()
				}
			}
			scanLogger.Warn("Failed to look up account", "accountId", results[i].AccountID, "error", err)
			results[i].Error = err.Error()
		}
	}

	return results, nil
}

func (s *LookupServiceImpl) scanOne(ctx context.Context, network domain.Network, result *nearlookup.ScanResult) error {
	accountID, err := domain.NewAccountID(result.AccountID)
	if err != nil {
		return fmt.Errorf("account id validation failed: %w", err)
	}
	report, err := s.lookup(ctx, network, accountID)
	if err != nil {
		return err
	}
	apiReport := mapDomainToAPIReport(report)
	result.Report = &apiReport
	return nil
}
