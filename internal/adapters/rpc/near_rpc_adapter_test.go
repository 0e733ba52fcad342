package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"near_account_lookup/internal/adapters/rpc"
	"near_account_lookup/internal/core/domain"
)

func newAdapter(t *testing.T, handler http.HandlerFunc) *rpc.NearRPCAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	table := domain.EndpointTable{
		domain.NetworkMainnet: {RPCURL: server.URL},
		domain.NetworkTestnet: {RPCURL: server.URL + "/testnet"},
	}
	return rpc.NewNearRPCAdapter(table, server.Client(), nil)
}

func mustAccountID(t *testing.T, s string) domain.AccountID {
	t.Helper()
	id, err := domain.NewAccountID(s)
	require.NoError(t, err)
	return id
}

func TestViewAccount_Success(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			JSONRPC string            `json:"jsonrpc"`
			ID      string            `json:"id"`
			Method  string            `json:"method"`
			Params  map[string]string `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.Equal(t, "query", req.Method)
		assert.Equal(t, map[string]string{
			"request_type": "view_account",
			"finality":     "final",
			"account_id":   "alice.near",
		}, req.Params)
		_, err := uuid.Parse(req.ID)
		assert.NoError(t, err, "request id should be a uuid")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"x","result":{
			"amount":"1500000000000000000000000","locked":"0","storage_usage":182,
			"code_hash":"11111111111111111111111111111111","block_height":1}}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state, err := adapter.ViewAccount(ctx, domain.NetworkMainnet, mustAccountID(t, "alice.near"))
	require.NoError(t, err)
	assert.Equal(t, domain.NewAccountState("1500000000000000000000000", 182), state)
}

func TestViewAccount_UsesNetworkEndpoint(t *testing.T) {
	var gotPath string
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"result":{"amount":"0","storage_usage":0}}`))
	})

	_, err := adapter.ViewAccount(context.Background(), domain.NetworkTestnet, mustAccountID(t, "bob.testnet"))
	require.NoError(t, err)
	assert.Equal(t, "/testnet", gotPath)
}

func TestViewAccount_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "Non-2xx status",
			status:     http.StatusServiceUnavailable,
			body:       "upstream down",
			wantKind:   domain.ErrRPCTransport,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:        "Error member with cause",
			status:      http.StatusOK,
			body:        `{"jsonrpc":"2.0","id":"x","error":{"name":"HANDLER_ERROR","cause":{"name":"UNKNOWN_ACCOUNT"},"code":-32000,"message":"Server error"}}`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: "UNKNOWN_ACCOUNT",
		},
		{
			name:        "Error member as string",
			status:      http.StatusOK,
			body:        `{"error":"boom"}`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: `"boom"`,
		},
		{
			name:        "Missing result",
			status:      http.StatusOK,
			body:        `{"jsonrpc":"2.0","id":"x"}`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: "response has no result",
		},
		{
			name:        "Null result",
			status:      http.StatusOK,
			body:        `{"result":null}`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: "response has no result",
		},
		{
			name:        "Error inside result",
			status:      http.StatusOK,
			body:        `{"result":{"error":"account alice.near does not exist while viewing","logs":[]}}`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: "account alice.near does not exist while viewing",
		},
		{
			name:        "Malformed body",
			status:      http.StatusOK,
			body:        `<html>`,
			wantKind:    domain.ErrRPCApplication,
			wantMessage: "failed to unmarshal RPC response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := adapter.ViewAccount(context.Background(), domain.NetworkMainnet, mustAccountID(t, "alice.near"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var rpcErr *domain.RPCError
			require.ErrorAs(t, err, &rpcErr)
			assert.Equal(t, "query", rpcErr.Method)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rpcErr.StatusCode)
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, rpcErr.Message)
			}
		})
	}
}

func TestViewAccount_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	adapter := rpc.NewNearRPCAdapter(domain.EndpointTable{domain.NetworkMainnet: {RPCURL: url}}, nil, nil)
	_, err := adapter.ViewAccount(context.Background(), domain.NetworkMainnet, mustAccountID(t, "alice.near"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRPCTransport)
}

func TestViewAccount_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	adapter := newAdapter(t, func(http.ResponseWriter, *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ViewAccount(ctx, domain.NetworkMainnet, mustAccountID(t, "alice.near"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRPCTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
