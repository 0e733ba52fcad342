package activity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"near_account_lookup/internal/core/domain"
)

func newTestAdapter(t *testing.T, apiKey string, handler http.HandlerFunc) *NearBlocksAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	table := domain.EndpointTable{
		domain.NetworkMainnet: {ActivityURL: server.URL},
		domain.NetworkTestnet: {ActivityURL: server.URL + "/testnet"},
	}
	return NewNearBlocksAdapter(table, &Options{HTTPClient: server.Client(), APIKey: apiKey})
}

func accountID(t *testing.T, s string) domain.AccountID {
	t.Helper()
	id, err := domain.NewAccountID(s)
	require.NoError(t, err)
	return id
}

func TestRecentActivity_Success(t *testing.T) {
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/account/alice.near/txns", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"txns":[
			{"method":"ft_transfer","action_kind":"FUNCTION_CALL","block_timestamp":"1700000000000000000"},
			{"action_kind":"TRANSFER","block_timestamp":1700000000000000000},
			{"block_timestamp":null},
			{"method":"ignored"}
		]}`))
	})

	records, err := adapter.RecentActivity(context.Background(), domain.NetworkMainnet, accountID(t, "alice.near"))
	require.NoError(t, err)
	require.Len(t, records, domain.MaxActivityRecords)

	assert.Equal(t, "ft_transfer", records[0].Action)
	assert.Equal(t, "1700000000000000000", records[0].Timestamp.String())
	assert.Equal(t, "TRANSFER", records[1].Action)
	assert.True(t, records[1].Timestamp.IsPresent())
	assert.Equal(t, domain.DefaultActivityAction, records[2].Action)
	assert.False(t, records[2].Timestamp.IsPresent())
}

func TestRecentActivity_SendsAPIKeyAndUsesNetwork(t *testing.T) {
	var gotPath, gotAuth string
	adapter := newTestAdapter(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"txns":[]}`))
	})

	records, err := adapter.RecentActivity(context.Background(), domain.NetworkTestnet, accountID(t, "bob.testnet"))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "/testnet/v1/account/bob.testnet/txns", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestRecentActivity_NoTransactions(t *testing.T) {
	bodies := map[string]string{
		"Missing member":   `{}`,
		"Null member":      `{"txns":null}`,
		"Object member":    `{"txns":{"a":1}}`,
		"Top-level array":  `[]`,
		"Top-level string": `"nothing"`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			adapter := newTestAdapter(t, "", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			records, err := adapter.RecentActivity(context.Background(), domain.NetworkMainnet, accountID(t, "alice.near"))
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestRecentActivity_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "Server error", status: http.StatusInternalServerError, body: "oops", wantStatus: http.StatusInternalServerError},
		{name: "Rate limited", status: http.StatusTooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "Malformed body", status: http.StatusOK, body: `{"txns":[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, "", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := adapter.RecentActivity(context.Background(), domain.NetworkMainnet, accountID(t, "alice.near"))
			assert.Nil(t, records)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrActivityUnavailable)

			var fetchErr *domain.ActivityFetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
		})
	}
}

func TestRecentActivity_Timeout(t *testing.T) {
	release := make(chan struct{})
	adapter := newTestAdapter(t, "", func(http.ResponseWriter, *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.RecentActivity(ctx, domain.NetworkMainnet, accountID(t, "alice.near"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivityUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
