// Package rpc implements the account state client using JSON-RPC communication with a NEAR node.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/core/domain/client"
	"near_account_lookup/internal/logger"
)

const (
	methodQuery            = "query"
	requestTypeViewAccount = "view_account"
	finalityFinal          = "final"

	// maxResponseBody is the maximum response body size to read (1 MB).
	maxResponseBody = 1 << 20

	maxErrorMessage = 512
)

// NearRPCAdapter implements the client.AccountStateClient interface by making JSON-RPC calls to a NEAR node.
type NearRPCAdapter struct {
	endpoints  domain.EndpointTable
	httpClient *http.Client
	logger     logger.AppLogger
	newID      func() string
}

// Compile-time check to ensure NearRPCAdapter implements client.AccountStateClient
var _ client.AccountStateClient = (*NearRPCAdapter)(nil)

// NewNearRPCAdapter creates a new RPC adapter. The node URL is taken from endpoints for each call.
func NewNearRPCAdapter(endpoints domain.EndpointTable, httpClient *http.Client, appLogger logger.AppLogger) *NearRPCAdapter {
	if endpoints == nil {
		endpoints = domain.DefaultEndpointTable()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if appLogger == nil {
		appLogger = logger.NewNopLogger()
	}
	return &NearRPCAdapter{
		endpoints:  endpoints,
		httpClient: httpClient,
		logger:     appLogger,
		newID:      uuid.NewString,
	}
}

// ViewAccount fetches the finalized balance and storage usage of an account. It makes exactly one attempt.
func (a *NearRPCAdapter) ViewAccount(
	ctx context.Context,
	network domain.Network,
	accountID domain.AccountID,
) (domain.AccountState, error) {
	params := ViewAccountParams{
		RequestType: requestTypeViewAccount,
		Finality:    finalityFinal,
		AccountID:   accountID.String(),
	}

	respBody, err := a.doRPC(ctx, a.endpoints.Lookup(network).RPCURL, methodQuery, params)
	if err != nil {
		return domain.AccountState{}, err
	}

	var result ViewAccountResult
	if err := json.Unmarshal(respBody.Result, &result); err != nil {
		return domain.AccountState{}, &domain.RPCError{
			Kind:    domain.RPCErrorApplication,
			Method:  methodQuery,
			Message: "failed to unmarshal view_account result",
			Err:     err,
		}
	}
	if result.Error != "" {
		return domain.AccountState{}, &domain.RPCError{
			Kind:    domain.RPCErrorApplication,
			Method:  methodQuery,
			Message: result.Error,
		}
	}

	return mapViewAccountToDomain(&result), nil
}

// doRPC performs the actual JSON-RPC call.
func (a *NearRPCAdapter) doRPC(
	ctx context.Context,
	rpcURL string,
	method string,
	params any,
) (*JSONRPCResponse, error) {
	reqBody := JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      a.newID(),
		Method:  method,
		Params:  params,
	}
	requestLogger := a.logger.With("rpcURL", rpcURL, "method", method, "requestId", reqBody.ID)

	jsonReqBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal RPC request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, rpcURL, bytes.NewReader(jsonReqBody))
	if err != nil {
		return nil, &domain.RPCError{Kind: domain.RPCErrorTransport, Method: method, Message: "failed to create HTTP request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	requestLogger.Debug("Sending RPC request")
	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.RPCError{Kind: domain.RPCErrorTransport, Method: method, Err: err}
	}
	defer func() {
		if errClose := httpResp.Body.Close(); errClose != nil {
			requestLogger.Warn("Failed to close response body", "error", errClose)
		}
	}()

	bodyBytes, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return nil, &domain.RPCError{Kind: domain.RPCErrorTransport, Method: method, Message: "failed to read response body", Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &domain.RPCError{
			Kind:       domain.RPCErrorTransport,
			Method:     method,
			StatusCode: httpResp.StatusCode,
			Message:    truncateBody(string(bytes.TrimSpace(bodyBytes)), maxErrorMessage),
		}
	}

	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(bodyBytes, &rpcResp); err != nil {
		return nil, &domain.RPCError{
			Kind:    domain.RPCErrorApplication,
			Method:  method,
			Message: "failed to unmarshal RPC response",
			Err:     err,
		}
	}

	if !isNull(rpcResp.Error) {
		rpcErr := mapRPCErrorToDomain(method, rpcResp.Error)
		requestLogger.Debug("RPC returned an error", "code", rpcErr.Code, "message", rpcErr.Message)
		return nil, rpcErr
	}
	if isNull(rpcResp.Result) {
		return nil, &domain.RPCError{Kind: domain.RPCErrorApplication, Method: method, Message: "response has no result"}
	}

	return &rpcResp, nil
}
