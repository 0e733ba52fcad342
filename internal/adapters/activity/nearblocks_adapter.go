// Package activity implements the recent activity client on top of the NearBlocks transaction index.
package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/core/domain/client"
	"near_account_lookup/internal/logger"
)

// maxResponseBody is the maximum response body size to read (1 MB).
const maxResponseBody = 1 << 20

// NearBlocksAdapter implements client.ActivityClient. Every failure is reported as
// *domain.ActivityFetchError so callers can degrade to an empty list.
type NearBlocksAdapter struct {
	endpoints  domain.EndpointTable
	httpClient *http.Client
	apiKey     string
	logger     logger.AppLogger
}

var _ client.ActivityClient = (*NearBlocksAdapter)(nil)

// Options configures the NearBlocks adapter.
type Options struct {
	// HTTPClient overrides http.DefaultClient.
	HTTPClient *http.Client
	// APIKey is sent as a bearer token when set.
	APIKey string
	Logger logger.AppLogger
}

// NewNearBlocksAdapter creates an adapter that resolves the index URL from endpoints on each call.
func NewNearBlocksAdapter(endpoints domain.EndpointTable, opts *Options) *NearBlocksAdapter {
	a := &NearBlocksAdapter{
		endpoints:  endpoints,
		httpClient: http.DefaultClient,
		logger:     logger.NewNopLogger(),
	}
	if a.endpoints == nil {
		a.endpoints = domain.DefaultEndpointTable()
	}
	if opts != nil {
		if opts.HTTPClient != nil {
			a.httpClient = opts.HTTPClient
		}
		if opts.Logger != nil {
			a.logger = opts.Logger
		}
		a.apiKey = opts.APIKey
	}
	return a
}

// RecentActivity returns up to domain.MaxActivityRecords transactions of accountID, newest first
// as the index orders them.
func (a *NearBlocksAdapter) RecentActivity(
	ctx context.Context,
	network domain.Network,
	accountID domain.AccountID,
) ([]domain.ActivityRecord, error) {
	reqURL := fmt.Sprintf("%s/v1/account/%s/txns?limit=%d",
		a.endpoints.Lookup(network).ActivityURL,
		url.PathEscape(accountID.String()),
		domain.MaxActivityRecords,
	)
	requestLogger := a.logger.With("url", reqURL, "accountId", accountID.String())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.ActivityFetchError{Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	if a.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	requestLogger.Debug("Fetching recent activity")
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.ActivityFetchError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil, &domain.ActivityFetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &domain.ActivityFetchError{Err: fmt.Errorf("reading response: %w", err)}
	}

	txns, err := decodeTxns(body)
	if err != nil {
		return nil, &domain.ActivityFetchError{Err: fmt.Errorf("parsing response: %w", err)}
	}
	requestLogger.Debug("Fetched recent activity", "count", len(txns))

	return mapTxnsToDomain(txns), nil
}

func decodeTxns(body []byte) ([]TxnDTO, error) {
	var parsed txnsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Valid JSON that is not an object carries no transactions.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, nil
		}
		return nil, err
	}
	raw := bytes.TrimSpace(parsed.Txns)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var txns []TxnDTO
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}
